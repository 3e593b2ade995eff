package heuristics

import "regexp"

// The keyword and pattern tables below are the whole of the local
// classification ruleset. They are deliberately plain data so they can be
// unit-tested and extended without touching the matching code.

// offTopicKeywords lists substrings that mark a message as outside the
// assistant's mental-health scope. Matching is case-insensitive substring
// search; false positives (e.g. "car" inside another word's context) are an
// accepted trade-off.
var offTopicKeywords = []string{
	// Technology & programming
	"code", "programming", "software", "app", "website", "ui", "ux", "design", "frontend", "backend", "database", "api",
	"javascript", "python", "react", "node", "html", "css", "git", "github", "deployment", "server",

	// News & politics
	"news", "politics", "election", "president", "government", "congress", "senate", "vote", "campaign", "republican", "democrat",
	"world news", "breaking news", "current events", "international", "foreign policy",

	// Finance & business
	"stock", "market", "investment", "money", "finance", "banking", "economy", "business", "company", "startup", "entrepreneur",
	"cryptocurrency", "bitcoin", "trading", "portfolio", "retirement", "insurance",

	// Sports & entertainment
	"sports", "football", "basketball", "baseball", "soccer", "tennis", "golf", "olympics", "championship", "tournament",
	"movie", "film", "actor", "actress", "celebrity", "music", "song", "album", "concert", "tv show", "television",

	// Vehicles & transportation
	"car", "vehicle", "automobile", "truck", "motorcycle", "bike", "bicycle", "public transport", "subway", "bus", "train",
	"airplane", "flight", "travel", "vacation", "trip", "destination",

	// Academic & general knowledge
	"math", "mathematics", "science", "physics", "chemistry", "biology", "history", "geography", "literature", "philosophy",
	"art", "architecture", "engineering", "medicine", "law", "education", "research", "study", "weather",

	// Personal life outside the mental-health scope
	"dating", "relationship advice", "marriage", "wedding", "parenting", "childcare", "cooking", "recipe", "food", "diet",
	"fashion", "clothing", "shopping", "home improvement", "gardening", "pets", "animals",
}

// Affect vocabulary tiers for the local stress estimate. Order matters: the
// first matching tier wins, mirroring the escalation rules.
var (
	veryLowAffectPattern  = regexp.MustCompile(`(great|awesome|fantastic|amazing|grateful|happy|joyful|calm|relaxed|peaceful)`)
	lowAffectPattern      = regexp.MustCompile(`(good|fine|better|optimistic|content|satisfied)`)
	negativeAffectPattern = regexp.MustCompile(`(stressed|anxious|worried|tense|overwhelmed|frustrated)`)
	veryHighAffectPattern = regexp.MustCompile(`(awful|terrible|horrible|depressed|can't cope|panic|extreme)`)
)

// stressCausePattern confirms an explicit cause token. Negative affect alone
// never escalates past moderate; this pattern is the gate to high.
var stressCausePattern = regexp.MustCompile(`(work|job|deadline|meeting|project|boss|colleague|relationship|partner|family|friend|health|medical|doctor|hospital|finances|money|bill|debt|rent|mortgage|school|exam|test|assignment|homework|traffic|commute|weather|noise|crowd|social|party|event)`)

// affectWordsPattern is the "meaningful stress" check: any emotion-bearing
// vocabulary, positive or negative, counts.
var affectWordsPattern = regexp.MustCompile(`(great|awesome|fantastic|amazing|grateful|happy|joyful|calm|relaxed|peaceful|good|fine|better|optimistic|content|satisfied|stressed|anxious|worried|tense|overwhelmed|frustrated|awful|terrible|horrible|depressed|panic|extreme|can't cope)`)

// causePatterns tags free text with zero or more cause categories.
var causePatterns = map[string][]*regexp.Regexp{
	"work":          {regexp.MustCompile(`\bwork\b|\bjob\b|\bdeadline\b|\bmeeting\b|\bproject\b|\bboss\b|\bcolleague\b`)},
	"relationships": {regexp.MustCompile(`relationship|partner|family|friend|argument|conflict`)},
	"health":        {regexp.MustCompile(`health|medical|doctor|hospital|sick|illness|injur`)},
	"finances":      {regexp.MustCompile(`finance|money|bill|debt|rent|mortgage|expense|pay\b|salary`)},
	"school":        {regexp.MustCompile(`school|exam|test|assignment|homework|study|class|college|university`)},
	"commute":       {regexp.MustCompile(`traffic|commute|train|bus|subway|transport|drive`)},
	"social":        {regexp.MustCompile(`social|party|event|crowd`)},
	"sleep":         {regexp.MustCompile(`sleep|insomnia|tired|fatigue|restless`)},
}

// causeOrder fixes the iteration order over causePatterns so cause lists are
// deterministic.
var causeOrder = []string{"work", "relationships", "health", "finances", "school", "commute", "social", "sleep"}

// genericCopingPattern matches evidence-based coping techniques that are
// relevant regardless of the detected cause.
var genericCopingPattern = regexp.MustCompile(`(breath|breathing|meditat|mindful|ground|journal|gratitude|walk|stretch|relax|progressive muscle|body scan|box breathing|4-7-8|hydrate|drink water|step outside|fresh air)`)

// relevancePatterns maps a detected cause to task vocabulary that plausibly
// addresses it.
var relevancePatterns = map[string]*regexp.Regexp{
	"work":          regexp.MustCompile(`(plan|prioriti[sz]e|todo|to-do|time block|pomodoro|focus|inbox|email|meeting prep|break down|task list|schedule|organize|draft)`),
	"relationships": regexp.MustCompile(`(text|call|reach out|apolog|listen|set boundary|express|communicat|write a message|plan a talk)`),
	"health":        regexp.MustCompile(`(call doctor|book (an )?appointment|take medication|medication|rest|gentle|checkup|hydrate|nourish)`),
	"finances":      regexp.MustCompile(`(budget|track expense|review subscription|pay bill|plan payment|savings|spend)`),
	"school":        regexp.MustCompile(`(study|flashcard|revise|outline|read chapter|practice problems|submit|office hours|notes)`),
	"commute":       regexp.MustCompile(`(leave early|alternate route|pack early|prepare|podcast|music playlist|breath during commute)`),
	"social":        regexp.MustCompile(`(confirm plan|set boundary|say no|shorten duration|choose venue|ask a friend)`),
	"sleep":         regexp.MustCompile(`(wind down|sleep routine|no screens|dim lights|journaling before bed|breathing in bed|caffeine cutoff|set alarm)`),
}

// Category keyword scans, checked in order; the first match wins and the
// default is health.
var (
	mindfulnessCategoryPattern = regexp.MustCompile(`(breath|breathing|meditate|meditation|mindfulness|calm|relax|inhale|exhale|awareness|present|focus|center|ground|observe|notice|aware)`)
	exerciseCategoryPattern    = regexp.MustCompile(`(walk|exercise|stretch|workout|movement|yoga|run|dance|physical|activity|move|step|jog|bike|swim|climb|lift|push|pull)`)
	reflectionCategoryPattern  = regexp.MustCompile(`(journal|write|reflect|gratitude|think about|consider|contemplate|express|record|note|list|acknowledge|identify)`)
	learningCategoryPattern    = regexp.MustCompile(`(learn|read|study|discover|explore|research|skill|course|practice|develop|understand|knowledge)`)
	healthCategoryPattern      = regexp.MustCompile(`(sleep|drink|eat|water|nutrition|self-care|rest|nourish|hydrate|healthy|wellness|break|pause|time)`)
)

// Bullet-line extraction patterns.
var (
	bulletLinePattern = regexp.MustCompile(`^[•→\-\*]\s*(.+)$`)
	numberLinePattern = regexp.MustCompile(`^\d+\.\s*(.+)$`)
	arrowLinePattern  = regexp.MustCompile(`^\s*→\s*(.+)$`)

	emphasisPattern = regexp.MustCompile(`\*([^*]+)\*`)

	fillerPrefixPattern = regexp.MustCompile(`(?i)^(try|consider|practice|do|perform|attempt|start with|begin by|you could|you might|maybe|perhaps|how about|what about)\s+`)
	questionPattern     = regexp.MustCompile(`(?i)^(what|how|why|when|where|which|who|is|are|have you|do you|can you|could you|would you|will you)\s`)
	fillerLinePattern   = regexp.MustCompile(`(?i)^(that sounds|i understand|i hear|remember|it's|this is|you're|that's|this can|this will|this might|if you|when you|once you|after you|before you|while you)\b`)

	connectorPattern  = regexp.MustCompile(`(?i)\s+(?:and|then|or|while|during|after|before)\s+`)
	actionVerbPattern = regexp.MustCompile(`(?i)^(take|do|try|practice|perform|start|begin|go|sit|lie|stand|walk|run|write|read|listen|watch|focus|breathe|relax|stretch|drink|eat|sleep)\b`)

	coreActionPattern   = regexp.MustCompile(`(?i)(?:try|practice|do|perform|start|begin)\s+([^,.]+)`)
	timeDurationPattern = regexp.MustCompile(`(?i)([^,.]+(?:for \d+|\d+ minutes?|\d+ seconds?))`)
)

// exercisePattern filters extracted tasks down to exercise-flavored ones.
var exercisePattern = regexp.MustCompile(`(breath|breathing|exercise|stretch|walk|yoga|meditate|meditation|relax|calm|physical|movement|activity)`)

// exerciseRequestPattern detects an explicit ask for exercises or activities.
var exerciseRequestPattern = regexp.MustCompile(`(give me|need|want|looking for|suggest|recommend|provide|show me|tell me|what are|how to|exercise|exercises|workout|activity|activities|routine|practice)`)

// CrisisPattern flags user text indicating urgent risk; the assistant
// prefixes its reply with crisis-support guidance when it matches.
var CrisisPattern = regexp.MustCompile(`(?i)(suicide|kill myself|end it|can't go on|self[- ]?harm|hurt myself)`)
