// Command m4atag inspects and edits iTunes-style metadata in MPEG-4
// containers from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/go-m4a/m4atag"
)

func main() {
	app := &cli.App{
		Name:        "m4atag",
		Usage:       "inspect and edit M4A/M4B/M4P/M4V metadata",
		Description: "Reads, edits, and rewrites iTunes-style metadata atoms in MPEG-4 containers.",
		Commands: []*cli.Command{
			dumpCommand,
			getCommand,
			setCommand,
			probeCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "print the full atom tree",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		path, err := requirePath(c)
		if err != nil {
			return err
		}
		return m4atag.Dump(os.Stdout, path)
	},
}

var getCommand = &cli.Command{
	Name:      "get",
	Usage:     "print tag fields",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		path, err := requirePath(c)
		if err != nil {
			return err
		}
		file, err := m4atag.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		tag := file.Tag()
		title, hasTitle := tag.Title()
		printField("Title", title, hasTitle)
		album, hasAlbum := tag.Album()
		printField("Album", album, hasAlbum)
		printStrings("Artist", tag.Artist())
		printStrings("Album Artist", tag.AlbumArtist())
		printStrings("Composer", tag.Composer())
		year, hasYear := tag.Year()
		printField("Year", year, hasYear)
		comment, hasComment := tag.Comment()
		printField("Comment", comment, hasComment)
		if file.HasAudio {
			color.Cyan("Duration: %s", file.Audio.Duration)
		}
		for _, w := range file.Warnings {
			color.Yellow("warning: %s", w)
		}
		return nil
	},
}

var setCommand = &cli.Command{
	Name:      "set",
	Usage:     "set a tag field and save",
	ArgsUsage: "<file> <field> <value>",
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 3 {
			return fmt.Errorf("usage: m4atag set <file> <field> <value>")
		}
		path := c.Args().Get(0)
		field := c.Args().Get(1)
		value := c.Args().Get(2)

		file, err := m4atag.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := setField(file.Tag(), field, value); err != nil {
			return err
		}

		if err := file.Save(); err != nil {
			return err
		}
		color.Green("saved %s", path)
		return nil
	},
}

var probeCommand = &cli.Command{
	Name:      "probe",
	Usage:     "print audio technical info",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		path, err := requirePath(c)
		if err != nil {
			return err
		}
		file, err := m4atag.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		if !file.HasAudio {
			return fmt.Errorf("%s: no audio track found", path)
		}
		fmt.Printf("codec:       %s\n", file.Audio.Codec)
		fmt.Printf("duration:    %s\n", file.Audio.Duration)
		fmt.Printf("sample rate: %d Hz\n", file.Audio.SampleRate)
		fmt.Printf("channels:    %d\n", file.Audio.Channels)
		if file.Audio.AvgBitrate > 0 {
			fmt.Printf("avg bitrate: %d bps\n", file.Audio.AvgBitrate)
		}
		for _, ch := range file.Chapters {
			fmt.Printf("chapter %d: %s (%s)\n", ch.Index, ch.Title, ch.Start)
		}
		return nil
	},
}

func requirePath(c *cli.Context) (string, error) {
	if c.Args().Len() < 1 {
		return "", fmt.Errorf("usage: m4atag %s <file>", c.Command.Name)
	}
	return c.Args().Get(0), nil
}

func printField(name string, value string, ok bool) {
	if ok {
		fmt.Printf("%s: %s\n", name, value)
	}
}

func printStrings(name string, values []string) {
	for _, v := range values {
		fmt.Printf("%s: %s\n", name, v)
	}
}

func setField(tag *m4atag.Tag, field, value string) error {
	switch field {
	case "title":
		tag.SetTitle(value)
	case "album":
		tag.SetAlbum(value)
	case "artist":
		tag.SetArtist(value)
	case "album-artist":
		tag.SetAlbumArtist(value)
	case "comment":
		tag.SetComment(value)
	case "year":
		tag.SetYear(value)
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}
