package content

// Default returns the built-in content tables.
func Default() Tables {
	return Tables{
		Insights:  defaultInsights,
		Common:    commonInsights,
		TradeOffs: defaultTradeOffs,
		Glossary:  defaultGlossary,
	}
}

var defaultInsights = map[string][]Insight{
	"data-public": {
		{ID: "scraped-consent", Title: "Consent at scale",
			Text: "People who wrote the posts you scraped never agreed to train your model. Legal is not the same as consented."},
		{ID: "web-bias", Title: "The web is not the world",
			Text: "Web text over-represents some languages, regions and viewpoints. Your model will inherit that skew."},
	},
	"data-licensed": {
		{ID: "licensed-quality", Title: "Paying for provenance",
			Text: "Licensed data gives you a paper trail. Knowing where data came from is the first step to accountability."},
	},
	"data-user": {
		{ID: "user-privacy", Title: "Your users are your dataset",
			Text: "Training on user conversations can leak personal details back out. Anonymisation is harder than it looks."},
	},
	"data-synthetic": {
		{ID: "synthetic-echo", Title: "Echo chambers",
			Text: "Synthetic data reflects the model that generated it. Errors and biases can compound across generations."},
	},
	"data-curated": {
		{ID: "curated-voices", Title: "Who curates?",
			Text: "Curation quality depends on who sits at the table. Include the communities the system will affect."},
	},
	"filtering-minimal": {
		{ID: "minimal-harm", Title: "Freedom has a cost",
			Text: "Light filtering respects user autonomy but exposes vulnerable users, including minors, to harmful output."},
	},
	"filtering-moderate": {
		{ID: "moderate-false-positives", Title: "Keyword blind spots",
			Text: "Keyword filters block reclaimed language and health questions while missing coded hate speech."},
	},
	"filtering-strict": {
		{ID: "strict-overblock", Title: "Over-blocking",
			Text: "Strict filtering disproportionately silences marginalised groups discussing their own experiences."},
		{ID: "strict-reviewers", Title: "Reviewer wellbeing",
			Text: "Human reviewers see the worst content so users do not. Their mental health is part of your cost."},
	},
	"filtering-adaptive": {
		{ID: "adaptive-context", Title: "Context matters",
			Text: "The same words can be a threat or a quote. Context-aware systems reduce both harm and over-blocking."},
	},
	"behavior-neutral": {
		{ID: "neutral-myth", Title: "There is no view from nowhere",
			Text: "A neutral tone still reflects choices about what counts as neutral."},
	},
	"behavior-directive": {
		{ID: "directive-overreliance", Title: "Overreliance",
			Text: "Confident answers invite people to stop checking. Wrong advice delivered confidently does the most damage."},
	},
	"behavior-empathetic": {
		{ID: "empathetic-attachment", Title: "Emotional attachment",
			Text: "Warm assistants can foster dependency. Be clear that users are talking to software."},
	},
	"behavior-socratic": {
		{ID: "socratic-agency", Title: "Supporting agency",
			Text: "Guiding people to their own conclusions respects autonomy, though some users just need an answer."},
	},
	"bias-ignore": {
		{ID: "ignore-harm", Title: "Doing nothing is a decision",
			Text: "Skipping bias work does not make the model neutral. It ships whatever bias the data contains."},
	},
	"bias-basic": {
		{ID: "basic-benchmarks", Title: "Benchmarks are a floor",
			Text: "Passing a benchmark shows the absence of known problems, not the absence of problems."},
	},
	"bias-minimize": {
		{ID: "minimize-tradeoffs", Title: "Fairness has definitions",
			Text: "Fairness metrics can conflict. Decide which one matters for your users and say so publicly."},
	},
	"bias-audit": {
		{ID: "audit-independence", Title: "Independent eyes",
			Text: "External audits catch what internal teams are motivated not to see."},
	},
	"adaptToUser-true": {
		{ID: "adapt-filter-bubble", Title: "Personalisation bubbles",
			Text: "Adapting to each user can narrow what they see and reinforce what they already believe."},
	},
}

var commonInsights = []Insight{
	{ID: "transparency", Title: "Tell people what you built",
		Text:       "Whatever you choose, document it. Users deserve to know how the system was trained and filtered.",
		RelevantTo: []string{"data-public", "data-user", "filtering-minimal", "bias-ignore"}},
	{ID: "privacy-by-design", Title: "Privacy by design",
		Text:       "Collect the minimum, keep it the shortest time, and let people opt out.",
		RelevantTo: []string{"data-user", "adaptToUser-true"}},
	{ID: "vulnerable-users", Title: "Design for the most vulnerable user",
		Text:       "Safety decisions should be judged by their effect on the users with the least power.",
		RelevantTo: []string{"filtering-minimal", "behavior-empathetic", "behavior-directive"}},
	{ID: "continuous-eval", Title: "Evaluation never ends",
		Text:       "Bias and safety drift as the world changes. Budget for monitoring after launch.",
		RelevantTo: []string{"bias-basic", "bias-minimize", "bias-audit", "filtering-adaptive"}},
}

var defaultTradeOffs = map[string]TradeOff{
	"data-public": {
		Pros: []string{"Cheap and abundant", "Broad coverage of topics"},
		Cons: []string{"No consent from authors", "Skewed toward dominant voices"},
	},
	"data-public,user": {
		Pros: []string{"Broad plus relevant data", "Affordable at every tier"},
		Cons: []string{"Privacy exposure from user data", "Web bias remains"},
	},
	"data-licensed": {
		Pros: []string{"Clear provenance", "Higher quality text"},
		Cons: []string{"Expensive", "Narrower range of perspectives"},
	},
	"data-public,licensed": {
		Pros: []string{"Quality core with broad coverage"},
		Cons: []string{"Mixed provenance makes audits harder"},
	},
	"data-synthetic": {
		Pros: []string{"No personal data", "Can fill gaps for rare cases"},
		Cons: []string{"Inherits generator bias", "Can drift from reality"},
	},
	"data-curated": {
		Pros: []string{"Highest quality", "Community input"},
		Cons: []string{"Very expensive", "Slow to expand"},
	},
	"filtering-minimal": {
		Pros: []string{"Few false refusals", "Cheap"},
		Cons: []string{"Harmful output reaches users"},
	},
	"filtering-moderate": {
		Pros: []string{"Catches common harms"},
		Cons: []string{"Misses coded language", "Blocks some legitimate topics"},
	},
	"filtering-strict": {
		Pros: []string{"Very low harmful output"},
		Cons: []string{"Frequent over-blocking", "Costly human review"},
	},
	"filtering-adaptive": {
		Pros: []string{"Balances safety and expression"},
		Cons: []string{"Hard to explain decisions", "Expensive research"},
	},
	"behavior-neutral": {
		Pros: []string{"Predictable", "Less risk of manipulation"},
		Cons: []string{"Can feel dismissive"},
	},
	"behavior-directive": {
		Pros: []string{"Fast, actionable answers"},
		Cons: []string{"Encourages overreliance"},
	},
	"behavior-empathetic": {
		Pros: []string{"Supportive experience", "High engagement"},
		Cons: []string{"Risk of emotional dependency"},
	},
	"behavior-socratic": {
		Pros: []string{"Builds user understanding"},
		Cons: []string{"Slower, can frustrate users"},
	},
	"bias-ignore": {
		Pros: []string{"No cost", "Fastest launch"},
		Cons: []string{"Discriminatory outcomes go unnoticed"},
	},
	"bias-basic": {
		Pros: []string{"Catches known issues"},
		Cons: []string{"Unknown issues remain"},
	},
	"bias-minimize": {
		Pros: []string{"Measurably fairer outputs"},
		Cons: []string{"Expensive", "Fairness definitions may conflict"},
	},
	"bias-audit": {
		Pros: []string{"Independent accountability", "Public trust"},
		Cons: []string{"Most expensive option", "Findings may delay launch"},
	},
}

var defaultGlossary = map[string]string{
	"training data":       "The examples a model learns from. Its content, balance and provenance shape everything the model does.",
	"bias":                "Systematic skew in a model's outputs that favours or harms particular groups.",
	"bias audit":          "An independent review measuring how a system's outcomes differ across groups.",
	"content filtering":   "Automated or human review that blocks or modifies model output deemed harmful.",
	"false positive":      "Content wrongly flagged as harmful, such as a health question blocked by a keyword filter.",
	"synthetic data":      "Data generated by software, often another model, rather than collected from people.",
	"consent":             "Informed permission from the people whose data or work is used.",
	"personalisation":     "Adapting a system's behaviour to an individual user based on their history.",
	"filter bubble":       "A narrowing of the information a person sees, caused by personalisation.",
	"overreliance":        "Trusting an AI system's output beyond what its accuracy justifies.",
	"red teaming":         "Deliberately attacking a system to find harmful behaviour before users do.",
	"provenance":          "A record of where data came from and under what terms.",
	"fairness metric":     "A quantitative definition of fairness, such as equal error rates across groups.",
	"human in the loop":   "A design where people review or approve automated decisions.",
	"transparency report": "A public document describing how a system was built, tested and moderated.",
}
