// Package m4a orchestrates the atom-model package into the higher-level
// reads a file open actually needs: audio technical info and chapters,
// both gated by the caller's ReadConfig. The atom-level parse still
// descends the whole of moov whenever any concern is requested; the
// ReadConfig decides which of the parsed results are kept.
package m4a

import (
	"time"

	"github.com/go-m4a/m4atag/internal/atom"
)

// AudioInfo is the handful of technical properties this module reports
// about the audio track: what a player needs to know before decoding,
// not the decoded samples themselves.
type AudioInfo struct {
	Codec      string
	Duration   time.Duration
	SampleRate int
	Channels   int
	MaxBitrate uint32
	AvgBitrate uint32
}

// ReadAudioInfo extracts technical info from the first audio track found
// in the parsed tree. ok is false if the file has no audio track at all
// (an M4V with only a video track, for instance).
func ReadAudioInfo(tree atom.Tree) (info AudioInfo, ok bool) {
	info = AudioInfo{Duration: tree.Moov.Mvhd.Duration}

	track, found := tree.Moov.AudioTrack()
	if !found {
		return info, false
	}

	mp4a := mp4aOf(track)
	if mp4a == nil {
		return info, true
	}

	info.Codec = "aac"
	info.Channels = int(mp4a.ChannelConfig)
	info.SampleRate = int(mp4a.SampleRate)
	info.MaxBitrate = mp4a.MaxBitrate
	info.AvgBitrate = mp4a.AvgBitrate
	return info, true
}

func mp4aOf(track atom.Trak) *atom.Mp4a {
	if track.Mdia == nil || track.Mdia.Minf == nil || track.Mdia.Minf.Stbl == nil || track.Mdia.Minf.Stbl.Stsd == nil {
		return nil
	}
	return track.Mdia.Minf.Stbl.Stsd.Mp4a
}
