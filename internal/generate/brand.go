package generate

// Static context describing the commissioning brand, embedded in every
// generation prompt so articles stay on-message.
const brandName = "NovaClaw"

const brandContext = `NovaClaw is een Nederlands AI agency dat custom AI agents bouwt voor bedrijven.
18+ agent types: Klantenservice, Voice, Chatbot, Helpdesk, Content, SEO & AIO,
Email Marketing, Social Media, Ads & Campaign, Lead Generation, Appointment Setter,
E-commerce, Automation, Data & Analytics, Data Entry, Compliance, Web Scraping, Custom.
Tech-agnostisch: OpenAI GPT-4o, Anthropic Claude, Google Gemini, Meta Llama.
Website: novaclaw.tech | Email: info@novaclaw.tech`

// Fixed call-to-action blocks, appended after generation rather than asked
// of the model, to guarantee brand consistency.
const ctaArticleNL = `

## Klaar om AI agents in te zetten voor jouw bedrijf?

De AI-ontwikkelingen gaan razendsnel. Bedrijven die nu beginnen met AI agents bouwen een voorsprong die moeilijk in te halen is. NovaClaw bouwt custom AI agents op maat van jouw bedrijf, van klantenservice tot leadgeneratie en van content automation tot data analytics.

**Plan een gratis kennismakingsgesprek** en ontdek welke AI agents het verschil maken voor jouw bedrijf. Ga naar [novaclaw.tech](https://novaclaw.tech) of mail naar info@novaclaw.tech.`

const ctaArticleEN = `

## Ready to deploy AI agents for your business?

AI developments are moving fast. Businesses that start with AI agents now are building a lead that's hard to catch up to. NovaClaw builds custom AI agents tailored to your business, from customer service to lead generation and from content automation to data analytics.

**Schedule a free consultation** and discover which AI agents can make a difference for your business. Visit [novaclaw.tech](https://novaclaw.tech) or email info@novaclaw.tech.`

const ctaPost = "\n\nCurious what AI agents could do for your business? novaclaw.tech"

// ctaFor returns the fixed CTA block for a target tag and item kind.
func ctaFor(kind, tag string) string {
	if kind == KindArticle {
		if tag == "nl" {
			return ctaArticleNL
		}
		return ctaArticleEN
	}
	return ctaPost
}
