package tools

import "context"

// WebSearch simulates a web search over banking and fintech sources.
type WebSearch struct{}

func (WebSearch) Name() string        { return "web_search" }
func (WebSearch) Description() string { return "Search the web for market and product intelligence" }

func (WebSearch) Invoke(_ context.Context, args map[string]any) (string, error) {
	query := str(args, "query", "south african banking market")
	return marshal(map[string]any{
		"query": query,
		"results": []map[string]any{
			{"title": "SA digital banking adoption hits 68% among under-30s", "source": "fintech-review", "relevance": 0.92},
			{"title": "Savings account comparison: big five banks, 2025 rates", "source": "moneyweb-digest", "relevance": 0.87},
			{"title": "Youth banking: what Gen Z wants from a bank", "source": "banking-insights", "relevance": 0.81},
		},
	}), nil
}

// SocialSentiment simulates sentiment analysis across social platforms.
type SocialSentiment struct{}

func (SocialSentiment) Name() string        { return "social_sentiment" }
func (SocialSentiment) Description() string { return "Analyse social media sentiment for a topic or brand" }

func (SocialSentiment) Invoke(_ context.Context, args map[string]any) (string, error) {
	topic := str(args, "topic", "ABank")
	return marshal(map[string]any{
		"topic":     topic,
		"sentiment": map[string]any{"positive": 0.61, "neutral": 0.27, "negative": 0.12},
		"volume_7d": 4820,
		"trending_themes": []string{
			"no monthly fees", "app reliability", "rewards programme",
		},
	}), nil
}

// CompetitorMonitor simulates competitor product and rate monitoring.
type CompetitorMonitor struct{}

func (CompetitorMonitor) Name() string        { return "competitor_monitor" }
func (CompetitorMonitor) Description() string { return "Track competitor products, rates and campaigns" }

func (CompetitorMonitor) Invoke(_ context.Context, args map[string]any) (string, error) {
	segment := str(args, "segment", "savings")
	return marshal(map[string]any{
		"segment": segment,
		"competitors": []map[string]any{
			{"bank": "Capitec", "product": "Global One Savings", "rate": "8.25%", "recent_campaign": true},
			{"bank": "TymeBank", "product": "GoalSave", "rate": "10.0%", "recent_campaign": false},
			{"bank": "Discovery Bank", "product": "Demand Savings", "rate": "7.75%", "recent_campaign": true},
		},
	}), nil
}

// GoogleTrends simulates search interest trends.
type GoogleTrends struct{}

func (GoogleTrends) Name() string        { return "google_trends" }
func (GoogleTrends) Description() string { return "Fetch search interest trends for keywords" }

func (GoogleTrends) Invoke(_ context.Context, args map[string]any) (string, error) {
	keyword := str(args, "keyword", "savings account")
	return marshal(map[string]any{
		"keyword":       keyword,
		"interest_12m":  []int{54, 58, 61, 57, 63, 70, 74, 72, 78, 81, 85, 88},
		"rising_related": []string{"best savings rate 2025", "no fee bank account", "student bank account"},
	}), nil
}
