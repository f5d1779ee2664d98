package watcher

import "testing"

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"lecture.mp3", true},
		{"lecture.MP3", true},
		{"interview.wav", true},
		{"notes.m4a", true},
		{"video.mp4", false},
		{"readme.txt", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isAudioFile(tt.path); got != tt.want {
				t.Errorf("isAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
