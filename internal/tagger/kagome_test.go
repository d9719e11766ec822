package tagger

import (
	"context"
	"testing"
)

func TestKagomeTagsJapanese(t *testing.T) {
	tagger, err := NewKagome()
	if err != nil {
		t.Fatalf("NewKagome: %v", err)
	}

	s := sentenceOf("猫", "走る")
	if err := tagger.Tag(context.Background(), s); err != nil {
		t.Fatalf("Tag: %v", err)
	}

	if got := s.Tokens[0].Feature(FeaturePOS); got != "noun" {
		t.Errorf("猫 pos = %q, want noun", got)
	}
	if got := s.Tokens[1].Feature(FeaturePOS); got != "verb" {
		t.Errorf("走る pos = %q, want verb", got)
	}
	if got := s.Tokens[0].Feature(FeatureReading); got == "" {
		t.Error("猫 has no reading feature")
	}
}

func TestMapKagomePOS(t *testing.T) {
	tests := []struct {
		pos  string
		want string
	}{
		{pos: "名詞", want: "noun"},
		{pos: "動詞", want: "verb"},
		{pos: "形容詞", want: "adj"},
		{pos: "記号", want: "other"},
	}

	for _, tt := range tests {
		if got := mapKagomePOS(tt.pos); got != tt.want {
			t.Errorf("mapKagomePOS(%q) = %q, want %q", tt.pos, got, tt.want)
		}
	}
}
