package nameval

import "testing"

func TestSoundSymbolismDirection(t *testing.T) {
	sharp := SoundSymbolism("キキ")
	round := SoundSymbolism("モモ")
	if sharp <= 0 {
		t.Errorf("キキ symbolism = %v, want positive (sharp)", sharp)
	}
	if round >= 0 {
		t.Errorf("モモ symbolism = %v, want negative (round)", round)
	}
	if s := SoundSymbolism(""); s != 0 {
		t.Errorf("empty symbolism = %v, want 0", s)
	}
}

func TestSoundSymbolismVoicing(t *testing.T) {
	// voicing pulls toward bouba relative to the base character
	if SoundSymbolism("ガ") >= SoundSymbolism("カ") {
		t.Errorf("voiced should score rounder than its base")
	}
	// semi-voiced pulls toward kiki
	if SoundSymbolism("パ") <= SoundSymbolism("ハ") {
		t.Errorf("semi-voiced should score sharper than its base")
	}
}

func TestSoundSymbolismRange(t *testing.T) {
	for _, kana := range []string{"キキキキ", "ンンンン", "ガガガガ", "パピプペポ"} {
		s := SoundSymbolism(kana)
		if s < -1 || s > 1 {
			t.Errorf("SoundSymbolism(%q) = %v out of [-1,1]", kana, s)
		}
	}
}

func TestNaturalnessScore(t *testing.T) {
	clean := naturalnessScore(Segment("サクラ"))
	if clean != 1.0 {
		t.Errorf("サクラ naturalness = %v, want 1.0", clean)
	}
	triple := naturalnessScore(Segment("ラララ"))
	if triple >= clean {
		t.Errorf("ラララ naturalness = %v, want below %v", triple, clean)
	}
	if long := naturalnessScore(Segment("ラララララ")); long < 0 || long > 1 {
		t.Errorf("naturalness out of range: %v", long)
	}
}

func TestRhythmScore(t *testing.T) {
	if rhythmScore("ラーメン") <= rhythmScore("サクラ") {
		t.Errorf("nasal ending should lift the rhythm score")
	}
	if rhythmScore("ネット") <= 0.5 {
		t.Errorf("ネット should get the second-mora geminate bonus")
	}
	for _, kana := range []string{"", "サクラ", "コーヒー", "ネット"} {
		s := rhythmScore(kana)
		if s < 0 || s > 1 {
			t.Errorf("rhythmScore(%q) = %v out of range", kana, s)
		}
	}
}
