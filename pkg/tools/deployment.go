package tools

import "context"

// EmailPlatform simulates the email marketing platform API.
type EmailPlatform struct{}

func (EmailPlatform) Name() string        { return "email_platform" }
func (EmailPlatform) Description() string { return "Schedule and send email campaigns" }

func (EmailPlatform) Invoke(_ context.Context, args map[string]any) (string, error) {
	campaign := str(args, "campaign", "untitled")
	return marshal(map[string]any{
		"campaign":   campaign,
		"channel":    "email",
		"status":     "scheduled",
		"audience":   152000,
		"send_slots": []string{"08:00", "17:30"},
	}), nil
}

// SMSGateway simulates the SMS delivery gateway.
type SMSGateway struct{}

func (SMSGateway) Name() string        { return "sms_gateway" }
func (SMSGateway) Description() string { return "Send SMS campaign messages" }

func (SMSGateway) Invoke(_ context.Context, args map[string]any) (string, error) {
	campaign := str(args, "campaign", "untitled")
	return marshal(map[string]any{
		"campaign":      campaign,
		"channel":       "sms",
		"status":        "queued",
		"audience":      98000,
		"sender_id":     "ABank",
		"delivery_rate": 0.985,
	}), nil
}

// SocialPublisher simulates publishing to social media channels.
type SocialPublisher struct{}

func (SocialPublisher) Name() string        { return "social_publisher" }
func (SocialPublisher) Description() string { return "Publish posts to social media channels" }

func (SocialPublisher) Invoke(_ context.Context, args map[string]any) (string, error) {
	campaign := str(args, "campaign", "untitled")
	return marshal(map[string]any{
		"campaign": campaign,
		"channel":  "social",
		"status":   "published",
		"platforms": []map[string]any{
			{"name": "instagram", "post_id": "ig_88412"},
			{"name": "tiktok", "post_id": "tt_55120"},
			{"name": "x", "post_id": "x_90233"},
		},
	}), nil
}
