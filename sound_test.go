package main

import "testing"

func TestTonePCM(t *testing.T) {
	for name, tn := range map[string]tone{
		"eat":        eatTone,
		"game over":  gameOverTone,
		"background": backgroundTone,
	} {
		buf := tn.pcm()
		want := int(sampleRate*tn.note) * len(tn.notes) * 4
		if len(buf) != want {
			t.Errorf("%s: %d bytes, want %d", name, len(buf), want)
			continue
		}
		loud := false
		for i := 0; i < len(buf); i += 4 {
			if buf[i] != buf[i+2] || buf[i+1] != buf[i+3] {
				t.Fatalf("%s: channels differ at frame %d", name, i/4)
			}
			v := int16(uint16(buf[i]) | uint16(buf[i+1])<<8)
			if v > int16(tn.amp) || v < -int16(tn.amp) {
				t.Fatalf("%s: sample %d exceeds amplitude %v", name, v, tn.amp)
			}
			if v != 0 {
				loud = true
			}
		}
		if !loud {
			t.Errorf("%s: silent", name)
		}
	}
}
