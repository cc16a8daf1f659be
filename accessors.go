package m4atag

// Named accessors for the well-known ilst items this module exposes by
// name. Everything else — unrecognized fourccs, freeform "----" items —
// is reached through Tag.Get/Set/Add/Remove directly.

var (
	identTitle         = Ident(0xA9, 'n', 'a', 'm')
	identAlbum         = Ident(0xA9, 'a', 'l', 'b')
	identCopyright     = Ident('c', 'p', 'r', 't')
	identEncoder       = Ident(0xA9, 't', 'o', 'o')
	identComment       = Ident(0xA9, 'c', 'm', 't')
	identDescription   = Ident('d', 'e', 's', 'c')
	identGrouping      = Ident(0xA9, 'g', 'r', 'p')
	identLyrics        = Ident(0xA9, 'l', 'y', 'r')
	identYear          = Ident(0xA9, 'd', 'a', 'y')
	identTVShowName    = Ident('t', 'v', 's', 'h')
	identTVEpisodeName = Ident('t', 'v', 'e', 'n')
	identTVNetworkName = Ident('t', 'v', 'n', 'n')
	identMovementName  = Ident(0xA9, 'm', 'v', 'n')
	identWork          = Ident(0xA9, 'w', 'r', 'k')

	identArtist       = Ident(0xA9, 'A', 'R', 'T')
	identAlbumArtist  = Ident('a', 'A', 'R', 'T')
	identComposer     = Ident(0xA9, 'w', 'r', 't')

	identBPM            = Ident('t', 'm', 'p', 'o')
	identTVSeason       = Ident('t', 'v', 's', 'n')
	identTVEpisode      = Ident('t', 'v', 'e', 's')
	identMovementCount  = Ident(0xA9, 'm', 'v', 'c')
	identMovementIndex  = Ident(0xA9, 'm', 'v', 'i')

	identCompilation     = Ident('c', 'p', 'i', 'l')
	identPodcast         = Ident('p', 'c', 's', 't')
	identGaplessPlayback = Ident('p', 'g', 'a', 'p')
	identShowMovement    = Ident('s', 'h', 'w', 'm')
)

// Title is the "©nam" item.
func (t *Tag) Title() (string, bool) { return t.getString(identTitle) }

// SetTitle sets the "©nam" item.
func (t *Tag) SetTitle(v string) { t.setString(identTitle, v) }

// Album is the "©alb" item.
func (t *Tag) Album() (string, bool) { return t.getString(identAlbum) }

// SetAlbum sets the "©alb" item.
func (t *Tag) SetAlbum(v string) { t.setString(identAlbum, v) }

// Copyright is the "cprt" item.
func (t *Tag) Copyright() (string, bool) { return t.getString(identCopyright) }

// SetCopyright sets the "cprt" item.
func (t *Tag) SetCopyright(v string) { t.setString(identCopyright, v) }

// Encoder is the "©too" item.
func (t *Tag) Encoder() (string, bool) { return t.getString(identEncoder) }

// SetEncoder sets the "©too" item.
func (t *Tag) SetEncoder(v string) { t.setString(identEncoder, v) }

// Comment is the "©cmt" item.
func (t *Tag) Comment() (string, bool) { return t.getString(identComment) }

// SetComment sets the "©cmt" item.
func (t *Tag) SetComment(v string) { t.setString(identComment, v) }

// Description is the "desc" item.
func (t *Tag) Description() (string, bool) { return t.getString(identDescription) }

// SetDescription sets the "desc" item.
func (t *Tag) SetDescription(v string) { t.setString(identDescription, v) }

// Grouping is the "©grp" item.
func (t *Tag) Grouping() (string, bool) { return t.getString(identGrouping) }

// SetGrouping sets the "©grp" item.
func (t *Tag) SetGrouping(v string) { t.setString(identGrouping, v) }

// Lyrics is the "©lyr" item.
func (t *Tag) Lyrics() (string, bool) { return t.getString(identLyrics) }

// SetLyrics sets the "©lyr" item.
func (t *Tag) SetLyrics(v string) { t.setString(identLyrics, v) }

// Year is the "©day" item.
func (t *Tag) Year() (string, bool) { return t.getString(identYear) }

// SetYear sets the "©day" item.
func (t *Tag) SetYear(v string) { t.setString(identYear, v) }

// TVShowName is the "tvsh" item.
func (t *Tag) TVShowName() (string, bool) { return t.getString(identTVShowName) }

// SetTVShowName sets the "tvsh" item.
func (t *Tag) SetTVShowName(v string) { t.setString(identTVShowName, v) }

// TVEpisodeName is the "tven" item.
func (t *Tag) TVEpisodeName() (string, bool) { return t.getString(identTVEpisodeName) }

// SetTVEpisodeName sets the "tven" item.
func (t *Tag) SetTVEpisodeName(v string) { t.setString(identTVEpisodeName, v) }

// TVNetworkName is the "tvnn" item.
func (t *Tag) TVNetworkName() (string, bool) { return t.getString(identTVNetworkName) }

// SetTVNetworkName sets the "tvnn" item.
func (t *Tag) SetTVNetworkName(v string) { t.setString(identTVNetworkName, v) }

// MovementName is the "©mvn" item.
func (t *Tag) MovementName() (string, bool) { return t.getString(identMovementName) }

// SetMovementName sets the "©mvn" item.
func (t *Tag) SetMovementName(v string) { t.setString(identMovementName, v) }

// Work is the "©wrk" item.
func (t *Tag) Work() (string, bool) { return t.getString(identWork) }

// SetWork sets the "©wrk" item.
func (t *Tag) SetWork(v string) { t.setString(identWork, v) }

// Artist returns every "©ART" value, in file order.
func (t *Tag) Artist() []string { return t.getStrings(identArtist) }

// SetArtist replaces every "©ART" item with values, in order.
func (t *Tag) SetArtist(values ...string) { t.setStrings(identArtist, values) }

// AlbumArtist returns every "aART" value, in file order.
func (t *Tag) AlbumArtist() []string { return t.getStrings(identAlbumArtist) }

// SetAlbumArtist replaces every "aART" item with values, in order.
func (t *Tag) SetAlbumArtist(values ...string) { t.setStrings(identAlbumArtist, values) }

// Composer returns every "©wrt" value, in file order.
func (t *Tag) Composer() []string { return t.getStrings(identComposer) }

// SetComposer replaces every "©wrt" item with values, in order.
func (t *Tag) SetComposer(values ...string) { t.setStrings(identComposer, values) }

// BPM is the "tmpo" item.
func (t *Tag) BPM() (uint16, bool) { return t.getU16(identBPM) }

// SetBPM sets the "tmpo" item.
func (t *Tag) SetBPM(v uint16) { t.setU16(identBPM, v) }

// TVSeason is the "tvsn" item.
func (t *Tag) TVSeason() (uint16, bool) { return t.getU16(identTVSeason) }

// SetTVSeason sets the "tvsn" item.
func (t *Tag) SetTVSeason(v uint16) { t.setU16(identTVSeason, v) }

// TVEpisode is the "tves" item.
func (t *Tag) TVEpisode() (uint16, bool) { return t.getU16(identTVEpisode) }

// SetTVEpisode sets the "tves" item.
func (t *Tag) SetTVEpisode(v uint16) { t.setU16(identTVEpisode, v) }

// MovementCount is the "©mvc" item.
func (t *Tag) MovementCount() (uint16, bool) { return t.getU16(identMovementCount) }

// SetMovementCount sets the "©mvc" item.
func (t *Tag) SetMovementCount(v uint16) { t.setU16(identMovementCount, v) }

// MovementIndex is the "©mvi" item.
func (t *Tag) MovementIndex() (uint16, bool) { return t.getU16(identMovementIndex) }

// SetMovementIndex sets the "©mvi" item.
func (t *Tag) SetMovementIndex(v uint16) { t.setU16(identMovementIndex, v) }

// Compilation is the "cpil" item.
func (t *Tag) Compilation() bool { return t.getFlag(identCompilation) }

// SetCompilation sets the "cpil" item. Setting false removes the item
// entirely rather than writing a zero flag.
func (t *Tag) SetCompilation(v bool) { t.setFlag(identCompilation, v) }

// Podcast is the "pcst" item.
func (t *Tag) Podcast() bool { return t.getFlag(identPodcast) }

// SetPodcast sets the "pcst" item.
func (t *Tag) SetPodcast(v bool) { t.setFlag(identPodcast, v) }

// GaplessPlayback is the "pgap" item.
func (t *Tag) GaplessPlayback() bool { return t.getFlag(identGaplessPlayback) }

// SetGaplessPlayback sets the "pgap" item.
func (t *Tag) SetGaplessPlayback(v bool) { t.setFlag(identGaplessPlayback, v) }

// ShowMovement is the "shwm" item.
func (t *Tag) ShowMovement() bool { return t.getFlag(identShowMovement) }

// SetShowMovement sets the "shwm" item.
func (t *Tag) SetShowMovement(v bool) { t.setFlag(identShowMovement, v) }
