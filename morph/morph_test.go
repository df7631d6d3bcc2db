package morph

import (
	"errors"
	"slices"
	"testing"
	"testing/fstest"
)

func lexicon(t *testing.T) *Lexicon {
	t.Helper()
	l, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	return l
}

func TestDefault(t *testing.T) {
	l := lexicon(t)
	if len(l.morphos)-1 != 48 {
		t.Errorf("loaded %d morphos, want 48", len(l.morphos)-1)
	}
	t.Logf("Loaded %d morphos, %d models, %d lemmas, %d desinences, %d radicals, %d irregs",
		len(l.morphos)-1, len(l.models), len(l.lemmas),
		len(l.desinences), len(l.radicals), len(l.irregs))

	again, _ := Default()
	if again != l {
		t.Error("Default() returned a different lexicon on the second call")
	}
}

func TestMorpho(t *testing.T) {
	l := lexicon(t)
	tests := []struct {
		slot int
		want string
	}{
		{1, "masc,sing,nomn"},
		{20, "plur,gent"},
		{27, "datv"},
		{33, "masc,datv"},
		{0, ""},
		{49, ""},
	}
	for _, tt := range tests {
		if got := l.Morpho(tt.slot); got != tt.want {
			t.Errorf("Morpho(%d) = %q, want %q", tt.slot, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	l := lexicon(t)
	tests := []struct {
		word   string
		normal string
		tag    Tag
	}{
		{"тысяч", "тысяча", "NOUN,inan plur,gent"},
		{"тысяча", "тысяча", "NOUN,inan femn,sing,nomn"},
		{"десяти", "десять", "NUMR gent"},
		{"одна", "один", "NUMR femn,nomn"},
		{"трёх", "три", "NUMR gent"},
		{"трех", "три", "NUMR gent"},
		{"Сорок", "сорок", "NUMR nomn"},
		{"девяносто", "девяносто", "NUMR nomn"},
		{"двухсот", "двести", "NUMR gent"},
		{"миллионов", "миллион", "NOUN,inan plur,gent"},
		{"ноль", "ноль", "NOUN,inan masc,sing,nomn"},
		{"нуля", "ноль", "NOUN,inan masc,sing,gent"},
		{"первая", "первый", "ADJF,Anum femn,sing,nomn"},
		{"тысячный", "тысячный", "ADJF,Anum masc,sing,nomn"},
		{"56", "56", "NUMB,intg"},
		{"56-й", "56-й", "ADJF,Anum"},
		{"1-ая", "1-ая", "ADJF,Anum"},
		{"3.5", "3.5", "NUMB,real"},
	}
	for _, tt := range tests {
		a, err := l.Parse(tt.word)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.word, err)
			continue
		}
		if a.Normal != tt.normal || a.Tag != tt.tag {
			t.Errorf("Parse(%q) = %q %q, want %q %q", tt.word, a.Normal, a.Tag, tt.normal, tt.tag)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	l := lexicon(t)
	for _, word := range []string{"", "видос", "5-х", "12abc"} {
		if _, err := l.Parse(word); !errors.Is(err, ErrUnknownWord) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknownWord", word, err)
		}
	}
}

func TestParseAll(t *testing.T) {
	l := lexicon(t)
	got := l.ParseAll("тысячи")
	var slots []int
	for _, a := range got {
		slots = append(slots, a.Slot())
	}
	want := []int{8, 19, 22}
	if !slices.Equal(slots, want) {
		t.Errorf("ParseAll(%q) slots = %v, want %v", "тысячи", slots, want)
	}
}

func TestInflect(t *testing.T) {
	l := lexicon(t)
	tests := []struct {
		word string
		c    Case
		want string
	}{
		{"тысяч", Dative, "тысячам"},
		{"тысяча", Genitive, "тысячи"},
		{"тысяча", Dative, "тысяче"},
		{"десять", Genitive, "десяти"},
		{"десять", Dative, "десяти"},
		{"сто", Genitive, "ста"},
		{"сто", Dative, "ста"},
		{"один", Dative, "одному"},
		{"одна", Genitive, "одной"},
		{"два", Instrumental, "двумя"},
		{"три", Genitive, "трёх"},
		{"четыре", Instrumental, "четырьмя"},
		{"восемь", Genitive, "восьми"},
		{"восемь", Instrumental, "восемью"},
		{"сорок", Dative, "сорока"},
		{"пятьдесят", Genitive, "пятидесяти"},
		{"восемьдесят", Instrumental, "восемьюдесятью"},
		{"двести", Genitive, "двухсот"},
		{"триста", Dative, "трёмстам"},
		{"пятьсот", Prepositional, "пятистах"},
		{"миллион", Dative, "миллиону"},
		{"миллионов", Dative, "миллионам"},
		{"ноль", Genitive, "нуля"},
		{"ноль", Accusative, "ноль"},
		{"строка", Instrumental, "строкой"},
		{"первый", Genitive, "первого"},
		{"третья", Dative, "третьей"},
	}
	for _, tt := range tests {
		a, err := l.Parse(tt.word)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.word, err)
			continue
		}
		got, err := l.Inflect(a, tt.c)
		if err != nil {
			t.Errorf("Inflect(%q, %s): %v", tt.word, tt.c, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Inflect(%q, %s) = %q, want %q", tt.word, tt.c, got, tt.want)
		}
	}
}

func TestInflectNumberToken(t *testing.T) {
	l := lexicon(t)
	a, _ := l.Parse("56")
	if _, err := l.Inflect(a, Genitive); !errors.Is(err, ErrUnknownWord) {
		t.Errorf("Inflect(56) error = %v, want ErrUnknownWord", err)
	}
}

func TestLexeme(t *testing.T) {
	l := lexicon(t)
	a, _ := l.Parse("первый")
	got, err := l.Lexeme(a)
	if err != nil {
		t.Fatalf("Lexeme(первый): %v", err)
	}
	want := []string{"первый", "первого", "первому", "первым", "первом", "первая"}
	if len(got) < len(want) || !slices.Equal(got[:len(want)], want) {
		t.Errorf("Lexeme(первый) = %v, want prefix %v", got, want)
	}
	if !slices.Contains(got, "первою") || !slices.Contains(got, "первыми") {
		t.Errorf("Lexeme(первый) = %v, missing variant forms", got)
	}
	if len(got) != len(unique(got)) {
		t.Errorf("Lexeme(первый) has duplicates: %v", got)
	}
}

func TestAgreeWithNumber(t *testing.T) {
	l := lexicon(t)
	tests := []struct {
		word string
		n    int
		want string
	}{
		{"слог", 1, "слог"},
		{"слог", 2, "слога"},
		{"слог", 4, "слога"},
		{"слог", 5, "слогов"},
		{"слог", 11, "слогов"},
		{"слог", 12, "слогов"},
		{"слог", 21, "слог"},
		{"слог", 22, "слога"},
		{"слог", 0, "слогов"},
		{"слог", 111, "слогов"},
		{"строка", 1, "строка"},
		{"строка", 3, "строки"},
		{"строка", 5, "строк"},
		{"слово", 2, "слова"},
		{"слово", 17, "слов"},
	}
	for _, tt := range tests {
		got, err := l.AgreeWithNumber(tt.word, tt.n)
		if err != nil {
			t.Errorf("AgreeWithNumber(%q, %d): %v", tt.word, tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AgreeWithNumber(%q, %d) = %q, want %q", tt.word, tt.n, got, tt.want)
		}
	}
}

func TestInflectionTable(t *testing.T) {
	l := lexicon(t)
	lemma := l.Lemma("тысяча")
	if lemma == nil {
		t.Fatal("Lemma(тысяча) is nil")
	}
	table := l.InflectionTable(lemma)
	for _, slot := range []int{7, 8, 9, 10, 11, 12, 19, 20, 21, 22, 23, 24} {
		if len(table.Cells[slot]) == 0 {
			t.Errorf("тысяча inflection table missing cell %d", slot)
		}
	}
	if got := table.Cells[11]; !slices.Equal(got, []string{"тысячей", "тысячью"}) {
		t.Errorf("тысяча ablt = %v, want [тысячей тысячью]", got)
	}
	if len(table.Cells) != 12 {
		t.Errorf("тысяча inflection table has %d cells, want 12", len(table.Cells))
	}
}

func TestModelInheritance(t *testing.T) {
	l := lexicon(t)
	m := l.models["восемь"]
	if m == nil {
		t.Fatal("model восемь not loaded")
	}
	if !m.Inherits("пять") || m.Inherits("сто") {
		t.Error("восемь should descend from пять")
	}
	if m.POS() != "NUMR" {
		t.Errorf("восемь POS = %q, want NUMR", m.POS())
	}
	if m.RadicalRules[1] != "1,0" || m.RadicalRules[2] != "3,ьм" {
		t.Errorf("восемь radical rules = %v", m.RadicalRules)
	}
}

func TestNewFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"data/morphos.ru": {Data: []byte("1:masc,sing,nomn\n2:masc,sing,gent\n")},
		"data/modeles.ru": {Data: []byte("modele:кот\npos:NOUN,anim\nR:1:K\ndes:1-2:1:-;а\n")},
		"data/lemmes.ru":  {Data: []byte("! cats\nкот|кот||\n")},
		"data/irregs.ru":  {Data: []byte("")},
	}
	l, err := New(fsys)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, err := l.Parse("кота")
	if err != nil {
		t.Fatalf("Parse(кота): %v", err)
	}
	if a.Normal != "кот" || a.Tag != "NOUN,anim masc,sing,gent" {
		t.Errorf("Parse(кота) = %q %q", a.Normal, a.Tag)
	}

	delete(fsys, "data/irregs.ru")
	if _, err := New(fsys); err == nil {
		t.Error("New without irregs.ru should fail")
	}

	fsys["data/irregs.ru"] = &fstest.MapFile{}
	fsys["data/lemmes.ru"] = &fstest.MapFile{Data: []byte("пёс|собака||\n")}
	if _, err := New(fsys); err == nil {
		t.Error("New with an unknown model should fail")
	}

	fsys["data/lemmes.ru"] = &fstest.MapFile{Data: []byte("кот|кот||\n")}
	bad := map[string]string{
		"unknown parent":    "modele:кот\npere:зверь\n",
		"unknown directive": "modele:кот\nfoo:bar\n",
		"bad slots":         "modele:кот\ndes:x:1:а\n",
		"orphan line":       "R:1:K\nmodele:кот\n",
	}
	for name, models := range bad {
		fsys["data/modeles.ru"] = &fstest.MapFile{Data: []byte(models)}
		if _, err := New(fsys); err == nil {
			t.Errorf("New with %s should fail", name)
		}
	}

	fsys["data/modeles.ru"] = &fstest.MapFile{Data: []byte("modele:кот\nR:1:K\ndes:1-2:1:-;а\n")}
	fsys["data/irregs.ru"] = &fstest.MapFile{Data: []byte("котяра:пёс:1\n")}
	if _, err := New(fsys); err == nil {
		t.Error("New with an irregular of an unknown lemma should fail")
	}
}

func TestTag(t *testing.T) {
	tag := Tag("ADJF,Anum masc,sing,nomn")
	if !tag.Has("Anum") || !tag.Has("sing") || tag.Has("plur") {
		t.Errorf("Tag(%q).Has gave wrong answers", tag)
	}
	if tag.POS() != "ADJF" {
		t.Errorf("Tag(%q).POS() = %q, want ADJF", tag, tag.POS())
	}
	if tag.Case() != Nominative {
		t.Errorf("Tag(%q).Case() = %q, want nomn", tag, tag.Case())
	}
	if c, ok := ParseCase("ablt"); !ok || c != Instrumental {
		t.Errorf("ParseCase(ablt) = %q, %v", c, ok)
	}
	if _, ok := ParseCase("voct"); ok {
		t.Error("ParseCase(voct) should fail")
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ёлка", "елка"},
		{"трёх", "трех"},
		{"СТО", "сто"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSlots(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"1-6", []int{1, 2, 3, 4, 5, 6}},
		{"1,3,5", []int{1, 3, 5}},
		{"1-3,5,7-9", []int{1, 2, 3, 5, 7, 8, 9}},
		{"10", []int{10}},
	}
	for _, tt := range tests {
		got, err := parseSlots(tt.in)
		if err != nil {
			t.Errorf("parseSlots(%q): %v", tt.in, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("parseSlots(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, in := range []string{"", "a", "3-1", "1-x"} {
		if _, err := parseSlots(in); err == nil {
			t.Errorf("parseSlots(%q) should fail", in)
		}
	}
}
