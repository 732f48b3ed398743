// Package knowledge holds the static FAQ knowledge base used for locally
// generated answers.
//
// Responsibilities:
//   - Define the ordered list of topic rules (triggers + canned answer)
//   - Define the generic default answer for unmatched questions
//
// The rules are data, not branching code: they are evaluated top to bottom and
// the first rule with any matching trigger wins. Ordering is therefore part of
// the contract. A question that mentions both pricing and features gets the
// pricing answer only if pricing is listed first, so keep new rules below the
// ones they must not shadow.
package knowledge

// Topic identifies a knowledge base rule.
type Topic string

const (
	TopicProduct      Topic = "product"
	TopicPricing      Topic = "pricing"
	TopicFeatures     Topic = "features"
	TopicSupport      Topic = "support"
	TopicOnboarding   Topic = "onboarding"
	TopicFAQ          Topic = "faq"
	TopicTestimonials Topic = "testimonials"
	TopicBlog         Topic = "blog"
	TopicGeneral      Topic = "general"
)

// Rule maps trigger substrings to a canned answer. A rule matches when any of
// its triggers appears in the lowercased user message.
type Rule struct {
	Topic    Topic
	Triggers []string
	Answer   string
}

// Rules returns the knowledge base rules in priority order (highest first).
// The returned slice is a copy; callers may not mutate the knowledge base.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

var rules = []Rule{
	{
		Topic:    TopicProduct,
		Triggers: []string{"what is admybrand", "what is admy brand", "admybrand", "admy brand"},
		Answer: "**What is ADmyBRAND?**\n\nADmyBRAND is a comprehensive SaaS platform that revolutionizes omnichannel advertising. We're your all-in-one solution for discovering, booking, and managing advertising campaigns across multiple channels.\n\n**Our Mission:**\nWe simplify the complex world of advertising by connecting advertisers with the perfect ad spaces through our intelligent discovery system.\n\n**What We Do:**\n• **Hyperlocal Ad Discovery** - Find the perfect ad spaces for your target audience\n• **End-to-End Campaign Management** - From creation to completion\n• **Real-Time Analytics** - Track performance with live insights\n• **Unified Platform** - One login for all your advertising needs\n\n**Who We Serve:**\n• Individual advertisers looking for targeted placements\n• Growing agencies needing scalable solutions\n• Enterprise clients requiring dedicated support\n\nThink of us as your advertising command center - we make finding and managing ad spaces as easy as ordering food online! 🚀",
	},
	{
		Topic:    TopicPricing,
		Triggers: []string{"pricing", "cost", "price"},
		Answer: "We offer three main pricing plans:\n\n• Basic Plan: $10/month - Perfect for individual advertisers with up to 10 ad listings\n• Business Plan: $20/month - Ideal for growing agencies with up to 100 listings and white-label access\n• Enterprise Plan: $40/month - Unlimited access with dedicated support and API integration\n\nYou can use our interactive pricing calculator to get a custom quote based on your specific needs!",
	},
	{
		Topic:    TopicFeatures,
		Triggers: []string{"feature", "what can", "capabilities"},
		Answer: "ADmyBRAND offers powerful features including:\n\n• Hyperlocal Ad Discovery - Find the perfect ad spaces for your target audience\n• End-to-End Marketing Management - Manage campaigns from creation to completion\n• Real-Time Analytics - Track performance with live insights\n• One Universal Login - Access all tools with single sign-on\n• ADify Mobile App - Manage campaigns on the go\n• AI-Driven Filters - Smart recommendations for optimal placement\n• Automated Quotation & Invoicing - Streamlined billing process\n• White Label Platform - Brand the platform as your own\n• Unified Vendor Management - Manage all vendors in one place\n\nWould you like me to navigate you to the features section?",
	},
	{
		Topic:    TopicSupport,
		Triggers: []string{"support", "help", "contact"},
		Answer: "We provide comprehensive support:\n\n• 24/7 Help Desk for technical issues and troubleshooting\n• Customer Care for account management and billing inquiries\n• Dedicated Support for Enterprise customers with guaranteed response times\n• Multiple contact options: email, chat, and phone support\n\nYou can also check our FAQ section for quick answers to common questions!",
	},
	{
		Topic:    TopicOnboarding,
		Triggers: []string{"how to", "get started", "sign up"},
		Answer: "Getting started with ADmyBRAND is easy!\n\n1. Click the 'Get Started' button on our homepage\n2. Choose your pricing plan based on your needs\n3. Create your account and complete setup\n4. Start exploring our platform and features\n\nWould you like me to show you the pricing section to help you choose the right plan?",
	},
	{
		Topic:    TopicFAQ,
		Triggers: []string{"faq", "question"},
		Answer: "I can help you with common questions about:\n\n• Pricing and plans - Compare our three tiers\n• Features and capabilities - Learn about our tools\n• Getting started - Step-by-step setup guide\n• Support options - Available help channels\n• Platform usage - How to use our features\n\nJust ask me anything specific, or use the quick action buttons to navigate directly to different sections!",
	},
	{
		Topic:    TopicTestimonials,
		Triggers: []string{"testimonial", "review", "customer"},
		Answer: "Our customers love ADmyBRAND! Here's what they say:\n\n• \"ADmyBRAND transformed how we plan and manage campaigns. All in one place!\" - Marketing Head, FMCG Brand\n• \"Booking ad space was never this easy. The filters and analytics are super helpful.\" - Digital Marketing Agency\n• \"We use the white label portal to manage our unsold inventory and it's been a game-changer.\" - Local Ad Seller\n\nWould you like me to show you the testimonials section?",
	},
	{
		Topic:    TopicBlog,
		Triggers: []string{"blog", "article", "content"},
		Answer: "We regularly publish helpful content on our blog covering:\n\n• Campaign optimization strategies\n• Industry insights and trends\n• Platform feature guides\n• Success stories and case studies\n• Tips for better ad performance\n\nWould you like me to navigate you to our blog section?",
	},
}

// defaultAnswer is returned when no rule matches.
const defaultAnswer = "Hi! I'm AdBot, your ADmyBRAND assistant. I'm here to help you learn about our comprehensive advertising platform.\n\n**What is ADmyBRAND?**\nADmyBRAND is an all-in-one SaaS platform that simplifies omnichannel advertising. We connect advertisers with the perfect ad spaces through our intelligent discovery system.\n\n**What can I help you with?**\n• **Pricing Plans** - Compare our Basic ($10), Business ($20), and Enterprise ($40) plans\n• **Features** - Learn about our 9 powerful tools including Hyperlocal Discovery and Real-Time Analytics\n• **Getting Started** - Step-by-step guide to set up your account\n• **Support** - 24/7 help desk and dedicated customer care\n• **Success Stories** - See how other businesses are thriving with ADmyBRAND\n\nFeel free to ask me anything specific, or use the quick action buttons below to navigate directly to different sections!"
