package router

// Display limits per branch.
const (
	limitInline  = 3  // inline product mentions
	limitSearch  = 5  // explicit link/purchase searches
	limitListAll = 10 // "show all products"
)

// maxFastPathWords is the longest query (in whitespace tokens) the keyword
// rules still handle; anything longer escalates to the LLM.
const maxFastPathWords = 3

// listAllPhrases intercept explicit requests for the full product list
// before anything else, including escalation.
var listAllPhrases = []string{
	"product list",
	"list products",
	"show me products",
	"all products",
}

// explainCues mark questions that need a real explanation rather than a
// keyword reply.
var explainCues = []string{
	"explain",
	"what is",
	"how does",
	"why",
	"tell me about",
	"describe",
}

var (
	greetingWords = map[string]bool{"hello": true, "hi": true, "hey": true}
	productWords  = map[string]bool{"product": true, "products": true, "item": true, "items": true, "what": true}
	priceWords    = map[string]bool{"price": true, "prices": true, "cost": true, "costs": true}
	shippingWords = map[string]bool{"shipping": true, "delivery": true}
	linkWords     = map[string]bool{"link": true, "url": true, "buy": true, "purchase": true}
	farewellWords = map[string]bool{"bye": true, "goodbye": true, "exit": true}
)

// pricePhrases complement priceWords for the common multi-word phrasing.
var pricePhrases = []string{"how much"}

// Fixed replies.
const (
	ReplyGreeting = "Hello! Welcome to Starky Shop. How can I help you today?"

	ReplyPriceClarify = "I can help you find product prices. Could you specify which product you're interested in?"

	ReplyShipping = "Shipping information varies by product. Most items require shipping. Would you like to know about a specific product?"

	ReplyFarewell = "Thank you for visiting Starky Shop! Have a great day!"

	ReplyLinkSpecify = "Could you tell me which product you'd like a link to?"

	replyProductsPrefix = "Here are some of our products:\n"

	replyListAllPrefix = "Here is our full product list:<br>"

	replyFoundPrefix = "Here's what I found:\n"

	replyMatchesHint = "\n\nWould you like more details about any of these?"

	replyNoMatchFormat = "Sorry, I couldn't find a product matching %q. Could you try a different name?"
)
