// Package jpoetry finds Japanese-form syllabic poems (hokku, tanka and
// friends) hidden in Russian or English prose.
//
// A Detector counts syllables of every word, spelling digits out as
// Russian numerals first, picks the poem shapes whose syllable total or
// line count fits, and greedily cuts the words into phrases that must
// hit each shape's syllable pattern exactly.
//
//	lex, _ := morph.Default()
//	d := jpoetry.NewDetector(lex)
//	poem, _, err := d.DetectPoem("Я вспомнил видос, где у мужика банка в жепе лопнула..")
//	// poem.Genre == jpoetry.Hokku
package jpoetry
