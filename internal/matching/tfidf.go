package matching

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxFeatures caps the vocabulary of a single field space.
const DefaultMaxFeatures = 5000

// termTokenRe is a Unicode-aware run of two or more word characters. RE2's \w
// and \b are ASCII-only, so letters and digits are spelled out.
var termTokenRe = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// termVector is a sparse L2-normalized TF-IDF vector keyed by term index.
type termVector map[int]float64

// tfidfVectors fits a TF-IDF space over corpus and returns one vector per document.
// Raw counts are weighted with the smoothed idf ln((1+n)/(1+df))+1. An empty
// vocabulary produces empty vectors instead of an error.
func tfidfVectors(corpus []string, maxFeatures int) []termVector {
	counts := make([]map[string]int, len(corpus))
	df := make(map[string]int)
	total := make(map[string]int)
	for i, doc := range corpus {
		c := make(map[string]int)
		for _, tok := range termTokenRe.FindAllString(strings.ToLower(doc), -1) {
			if _, stop := englishStopWords[tok]; stop {
				continue
			}
			c[tok]++
		}
		for t, n := range c {
			df[t]++
			total[t] += n
		}
		counts[i] = c
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if total[terms[i]] != total[terms[j]] {
			return total[terms[i]] > total[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	n := float64(len(corpus))
	index := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for j, t := range terms {
		index[t] = j
		idf[j] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	vectors := make([]termVector, len(corpus))
	for i, c := range counts {
		v := make(termVector, len(c))
		var norm float64
		for t, cnt := range c {
			j, ok := index[t]
			if !ok {
				continue
			}
			w := float64(cnt) * idf[j]
			v[j] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range v {
				v[j] /= norm
			}
		}
		vectors[i] = v
	}
	return vectors
}

// cosine assumes both vectors are L2-normalized (or empty).
func cosine(a, b termVector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var dot float64
	for j, w := range a {
		dot += w * b[j]
	}
	return clamp(dot, 0, 1)
}

// similaritiesToQuery scores query against each doc inside a space fitted on {query} ∪ docs.
func similaritiesToQuery(query string, docs []string, maxFeatures int) []float64 {
	corpus := make([]string, 0, len(docs)+1)
	corpus = append(corpus, query)
	corpus = append(corpus, docs...)
	vectors := tfidfVectors(corpus, maxFeatures)
	sims := make([]float64, len(docs))
	for i := range docs {
		sims[i] = cosine(vectors[0], vectors[i+1])
	}
	return sims
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

var englishStopWords = func() map[string]struct{} {
	words := strings.Fields(`
a about above across after afterwards again against all almost alone along
already also although always am among amongst amoungst amount an and another
any anyhow anyone anything anyway anywhere are around as at back be became
because become becomes becoming been before beforehand behind being below
beside besides between beyond bill both bottom but by call can cannot cant co
con could couldnt cry de describe detail do done down due during each eg eight
either eleven else elsewhere empty enough etc even ever every everyone
everything everywhere except few fifteen fifty fill find fire first five for
former formerly forty found four from front full further get give go had has
hasnt have he hence her here hereafter hereby herein hereupon hers herself him
himself his how however hundred i ie if in inc indeed interest into is it its
itself keep last latter latterly least less ltd made many may me meanwhile
might mill mine more moreover most mostly move much must my myself name namely
neither never nevertheless next nine no nobody none noone nor not nothing now
nowhere of off often on once one only onto or other others otherwise our ours
ourselves out over own part per perhaps please put rather re same see seem
seemed seeming seems serious several she should show side since sincere six
sixty so some somehow someone something sometime sometimes somewhere still
such system take ten than that the their them themselves then thence there
thereafter thereby therefore therein thereupon these they thick thin third
this those though three through throughout thru thus to together too top
toward towards twelve twenty two un under until up upon us very via was we
well were what whatever when whence whenever where whereafter whereas whereby
wherein whereupon wherever whether which while whither who whoever whole whom
whose why will with within without would yet you your yours yourself
yourselves`)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()
