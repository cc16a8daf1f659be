package m4a

import (
	"testing"
	"time"

	"github.com/go-m4a/m4atag/internal/atom"
)

func audioTrack(mp4a *atom.Mp4a) atom.Trak {
	hdlrPayload := append([]byte{0, 0, 0, 0}, []byte{0, 0, 0, 0}...)
	hdlrPayload = append(hdlrPayload, atom.NewFourcc('s', 'o', 'u', 'n').Bytes()...)
	return atom.Trak{
		Mdia: &atom.Mdia{
			Hdlr: &atom.RawBox{Fourcc: atom.FourccHdlr, Payload: hdlrPayload},
			Minf: &atom.Minf{
				Stbl: &atom.Stbl{
					Stsd: &atom.Stsd{Mp4a: mp4a},
				},
			},
		},
	}
}

func TestReadAudioInfo_NoAudioTrack(t *testing.T) {
	tree := atom.Tree{Moov: atom.Moov{Mvhd: atom.Mvhd{Duration: 45 * time.Second}}}
	info, ok := ReadAudioInfo(tree)
	if ok {
		t.Error("expected ok=false when there is no audio track")
	}
	if info.Duration != 45*time.Second {
		t.Errorf("Duration = %v, want 45s even with no audio track", info.Duration)
	}
}

func TestReadAudioInfo_DurationWithoutMp4a(t *testing.T) {
	tree := atom.Tree{
		Moov: atom.Moov{
			Mvhd: atom.Mvhd{Duration: 90 * time.Second},
			Trak: []atom.Trak{audioTrack(nil)},
		},
	}
	info, ok := ReadAudioInfo(tree)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if info.Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 90s", info.Duration)
	}
	if info.Codec != "" {
		t.Errorf("Codec = %q, want empty when stsd has no mp4a", info.Codec)
	}
}

func TestReadAudioInfo_FullMp4a(t *testing.T) {
	mp4a := &atom.Mp4a{ChannelConfig: 2, SampleRate: 44100, MaxBitrate: 128000, AvgBitrate: 96000}
	tree := atom.Tree{
		Moov: atom.Moov{
			Mvhd: atom.Mvhd{Duration: 3 * time.Minute},
			Trak: []atom.Trak{audioTrack(mp4a)},
		},
	}
	info, ok := ReadAudioInfo(tree)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if info.Codec != "aac" {
		t.Errorf("Codec = %q, want aac", info.Codec)
	}
	if info.Channels != 2 {
		t.Errorf("Channels = %d, want 2", info.Channels)
	}
	if info.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", info.SampleRate)
	}
	if info.AvgBitrate != 96000 {
		t.Errorf("AvgBitrate = %d, want 96000", info.AvgBitrate)
	}
}
