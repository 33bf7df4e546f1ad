package catalog

// minTermLength filters out tokens too short to be meaningful search terms.
const minTermLength = 3

// stopWords are dropped from queries before matching: articles,
// prepositions, and chatbot filler words shoppers wrap requests in
// ("can you give me the link for ...").
var stopWords = map[string]bool{
	// articles & conjunctions
	"the": true, "and": true, "but": true,
	// prepositions
	"for": true, "with": true, "from": true, "about": true, "into": true,
	// common verbs & pronouns
	"are": true, "was": true, "were": true, "have": true, "has": true,
	"this": true, "that": true, "these": true, "those": true, "your": true,
	// chatbot filler
	"link": true, "url": true, "buy": true, "purchase": true,
	"provide": true, "give": true, "me": true, "please": true,
	"can": true, "you": true,
}
