package textnorm

import _ "embed"

//go:embed stopwords/portuguese.txt
var embeddedStopwords string
