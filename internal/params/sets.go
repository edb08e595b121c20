// Package params holds the fixed per-category generation parameter
// sets and the curated fallback bios served when generation fails.
package params

import "github.com/instabio/bioforge/internal/types"

// parameterSets maps each category to its ordered list of generation
// attempts. Each set nudges topic, profession, and personality so
// successive calls diversify instead of re-rolling the same prompt.
var parameterSets = map[types.Category][]types.ParameterSet{
	types.CategoryAesthetic: {
		{
			Interests:   "aesthetic lifestyle, minimalism, self-care, artistic expression",
			Profession:  "content creator, influencer, lifestyle enthusiast",
			Personality: "dreamy, artistic, minimalist vibes with soft colors and beautiful imagery",
			Tone:        "Aesthetic",
			Style:       "With Emojis",
			Category:    types.CategoryAesthetic,
			Format:      "three short lines",
		},
		{
			Interests:   "aesthetic lifestyle, photography, mindfulness, creativity",
			Profession:  "digital creator, artist, lifestyle blogger",
			Personality: "ethereal, peaceful, inspiring with dreamy aesthetic vibes",
			Tone:        "Aesthetic",
			Style:       "With Emojis",
			Category:    types.CategoryAesthetic,
			Format:      "three short lines",
		},
		{
			Interests:   "slow living, golden hour light, journaling, vintage finds",
			Profession:  "curator of small moments, daydreamer, creative soul",
			Personality: "soft, nostalgic, quietly confident with muted pastel energy",
			Tone:        "Aesthetic",
			Style:       "With Emojis",
			Category:    types.CategoryAesthetic,
			Format:      "three short lines",
		},
	},
	types.CategoryFunny: {
		{
			Interests:   "comedy, humor, entertainment, fun activities, pop culture",
			Profession:  "comedian, entertainer, content creator, funny person",
			Personality: "witty, humorous, entertaining, self-deprecating, playful",
			Tone:        "Funny",
			Style:       "With Emojis",
			Category:    types.CategoryFunny,
			Format:      "three short lines",
		},
		{
			Interests:   "memes, jokes, sarcasm, comedy shows, funny movies",
			Profession:  "professional procrastinator, meme lord, chaos coordinator",
			Personality: "sarcastic, witty, funny, relatable, entertaining",
			Tone:        "Funny",
			Style:       "With Emojis",
			Category:    types.CategoryFunny,
			Format:      "three short lines",
		},
		{
			Interests:   "snacks, naps, internet rabbit holes, terrible puns",
			Profession:  "CEO of bad decisions, part-time adult, full-time snacker",
			Personality: "absurd, deadpan, chaotic but lovable",
			Tone:        "Funny",
			Style:       "With Emojis",
			Category:    types.CategoryFunny,
			Format:      "three short lines",
		},
		{
			Interests:   "awkward moments, dad jokes, reality TV, overthinking",
			Profession:  "semi-professional human, couch critic, nap researcher",
			Personality: "goofy, self-aware, cheerfully unhinged",
			Tone:        "Funny",
			Style:       "With Emojis",
			Category:    types.CategoryFunny,
			Format:      "three short lines",
		},
	},
	types.CategoryBusiness: {
		{
			Interests:   "business growth, networking, leadership, entrepreneurship, professional development",
			Profession:  "CEO, founder, consultant, business owner, professional",
			Personality: "professional, authoritative, trustworthy, results-oriented, ambitious",
			Tone:        "Professional",
			Style:       "Clean Text",
			Category:    types.CategoryBusiness,
			Format:      "three short lines",
		},
		{
			Interests:   "marketing, sales, consulting, coaching, digital transformation",
			Profession:  "executive, director, manager, expert, specialist",
			Personality: "confident, strategic, innovative, goal-oriented, professional",
			Tone:        "Professional",
			Style:       "Clean Text",
			Category:    types.CategoryBusiness,
			Format:      "three short lines",
		},
		{
			Interests:   "startups, product strategy, investing, mentorship",
			Profession:  "founder, advisor, operator, angel investor",
			Personality: "sharp, pragmatic, builder mindset, approachable",
			Tone:        "Professional",
			Style:       "Clean Text",
			Category:    types.CategoryBusiness,
			Format:      "three short lines",
		},
	},
	types.CategoryCool: {
		{
			Interests:   "creativity, self-expression, lifestyle, adventures, dreams, positivity",
			Profession:  "creative, artist, influencer, student, free spirit, entrepreneur",
			Personality: "trendy, unique, expressive, confident, inspiring, cool",
			Tone:        "Trendy",
			Style:       "Emoji Rich",
			Category:    types.CategoryCool,
			Format:      "three short lines",
		},
		{
			Interests:   "fashion, music, travel, photography, art, self-love",
			Profession:  "content creator, designer, blogger, photographer, artist",
			Personality: "stylish, authentic, adventurous, passionate, creative, vibrant",
			Tone:        "Trendy",
			Style:       "Emoji Rich",
			Category:    types.CategoryCool,
			Format:      "three short lines",
		},
		{
			Interests:   "street style, playlists, late night drives, city lights",
			Profession:  "trendsetter, curator, maker, night owl",
			Personality: "effortless, bold, magnetic, a little mysterious",
			Tone:        "Trendy",
			Style:       "Emoji Rich",
			Category:    types.CategoryCool,
			Format:      "three short lines",
		},
	},
}

// Sets returns the ordered parameter sets for a category. The returned
// slice is a copy; callers may not mutate the fixed definitions.
func Sets(category types.Category) []types.ParameterSet {
	defs, ok := parameterSets[category]
	if !ok {
		return nil
	}
	out := make([]types.ParameterSet, len(defs))
	copy(out, defs)
	return out
}

// ClosingKeywords returns category-specific closing-line keywords used
// by the formatter, appended to the base dm/follow/connect list.
func ClosingKeywords(category types.Category) []string {
	switch category {
	case types.CategoryBusiness:
		return []string{"book", "consult", "collab", "contact", "link"}
	case types.CategoryAesthetic:
		return []string{"vibes", "magic"}
	case types.CategoryCool:
		return []string{"vibes", "watch"}
	case types.CategoryFunny:
		return []string{"warning", "send help"}
	}
	return nil
}
