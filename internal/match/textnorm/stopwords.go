package textnorm

import "strings"

// defaultStopWords covers common English function words plus generic
// professional vocabulary ("experience", "skills", boilerplate verbs) that
// carries no signal when comparing a resume against a job description.
const defaultStopWordList = `a an the and or but in on at to for of with by from is are was were be
been have has had do does did will would could should may might shall can
this that these those i we you he she it they our your their my his her its
not no as if so up out about into through during before after above below
between each all both few more most other some such than too very just also
well even back any good new first last long great little own right big high
different small large next early young important public work know take make
see come think look want give use find tell ask seem feel try leave call
keep let begin show hear play run move live believe hold bring happen write
provide sit stand lose pay meet include continue set learn change lead
understand watch follow stop create speak read spend grow open walk win
offer remember love consider appear buy wait serve die send expect build
stay fall cut reach kill remain suggest raise pass sell require report
decide pull per etc`

// DefaultStopWords returns a fresh copy of the built-in stop-word set.
func DefaultStopWords() map[string]struct{} {
	out := make(map[string]struct{}, 256)
	for _, w := range strings.Fields(defaultStopWordList) {
		out[w] = struct{}{}
	}
	return out
}
