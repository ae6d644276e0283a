package fallback

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"learnfield.org/course-web/internal/catalog"
)

// Content is a built-in static payload for section kinds that carry no body
// in the API document. These are presentation defaults kept as fixed tables,
// not derived from the fetched document.
type Content struct {
	Body  template.HTML // sanitized HTML rendered from the markdown source
	Items []Item
}

// Item is one promoted entry inside a static section (e.g. the bundled book).
type Item struct {
	Title string
	Lines []string
	Image string
}

var sanitizer = bluemonday.UGCPolicy()

// Static returns the built-in payload for kind in lang. Kinds without a
// static payload return an empty Content; the resolver never fails.
func Static(kind catalog.SectionType, lang string) Content {
	lang = NormalizeLang(lang)
	byLang, ok := statics[kind]
	if !ok {
		return Content{}
	}
	src, ok := byLang[lang]
	if !ok {
		src = byLang[defaultLang]
	}
	return Content{
		Body:  renderMarkdown(src.body),
		Items: src.items,
	}
}

// DefaultFAQ returns the built-in question list used when the API document
// has an faq section with no values.
func DefaultFAQ(lang string) []catalog.FAQItem {
	if NormalizeLang(lang) == "bn" {
		return cloneFAQ(faqBN)
	}
	return cloneFAQ(faqEN)
}

func cloneFAQ(items []catalog.FAQItem) []catalog.FAQItem {
	return append([]catalog.FAQItem(nil), items...)
}

func renderMarkdown(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		// markdown sources are compiled in; a conversion failure means a
		// broken table entry, surface it as escaped text rather than panic
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

type staticSource struct {
	body  string
	items []Item
}

var statics = map[catalog.SectionType]map[string]staticSource{
	catalog.SectionFreeItems: {
		"en": {
			items: []Item{{
				Title: "IELTS Preparation at Home (Hardcopy Book)",
				Lines: []string{
					"360 pages",
					"Premium hardcopy",
					"Free delivery",
					"Nationwide delivery within 4 working days",
				},
				Image: "https://cdn.example.com/images/catalog/media/book-cover.png",
			}},
		},
		"bn": {
			items: []Item{{
				Title: "ঘরে বসে IELTS প্রস্তুতি (Hardcopy Book)",
				Lines: []string{
					"৩৬০ পৃষ্ঠা",
					"প্রিমিয়াম হার্ডকপি",
					"ফ্রি ডেলিভারি",
					"৪ কর্মদিবসের মধ্যে সারাদেশে ডেলিভারি",
				},
				Image: "https://cdn.example.com/images/catalog/media/book-cover.png",
			}},
		},
	},
	catalog.SectionHowToPay: {
		"en": {
			body: "To learn how to pay in detail, [watch this video](https://www.youtube.com/watch?v=payment-walkthrough).",
		},
		"bn": {
			body: "কীভাবে পেমেন্ট করবেন তা বিস্তারিত জানতে [এই ভিডিওটি দেখুন](https://www.youtube.com/watch?v=payment-walkthrough)।",
		},
	},
	catalog.SectionRequirements: {
		"en": {
			items: []Item{{
				Lines: []string{
					"Internet connection (WiFi or mobile data)",
					"Smartphone or PC",
				},
			}},
		},
		"bn": {
			items: []Item{{
				Lines: []string{
					"ইন্টারনেট সংযোগ (ওয়াইফাই বা মোবাইল ইন্টারনেট)",
					"স্মার্টফোন অথবা পিসি",
				},
			}},
		},
	},
}

var faqEN = []catalog.FAQItem{
	{
		ID:       "1",
		Question: "How do I start after purchasing the course?",
		Answer:   "After purchasing the course, you will receive an email with login credentials and course access instructions. You can immediately start learning from your dashboard.",
	},
	{
		ID:       "2",
		Question: "Where should I contact for any technical issues?",
		Answer:   "For any technical issues, you can contact our support team by email or call our helpline. We provide 24/7 customer support for all technical queries.",
	},
	{
		ID:       "3",
		Question: "Is this course designed for Academic or General IELTS?",
		Answer:   "This course is designed for both Academic and General IELTS. The course content covers all modules required for both types of IELTS examinations.",
	},
	{
		ID:       "4",
		Question: "What are the benefits of studying online?",
		Answer:   "Online learning offers flexibility, recorded lectures for revision, interactive materials, personalized feedback, and cost-effectiveness compared to traditional offline courses.",
	},
}

var faqBN = []catalog.FAQItem{
	{
		ID:       "1",
		Question: "কোর্স কেনার পর কিভাবে শুরু করবো?",
		Answer:   "কোর্স কেনার পর আপনি একটি ইমেইল পাবেন লগইন তথ্য এবং কোর্স অ্যাক্সেসের নির্দেশনা সহ। আপনি তৎক্ষণাৎ আপনার ড্যাশবোর্ড থেকে শেখা শুরু করতে পারবেন।",
	},
	{
		ID:       "2",
		Question: "যেকোনো টেকনিকাল সমস্যায় কোথায় যোগাযোগ করবো?",
		Answer:   "যেকোনো টেকনিকাল সমস্যার জন্য আপনি আমাদের সাপোর্ট টিমের সাথে ইমেইলে যোগাযোগ করতে পারেন অথবা আমাদের হেল্পলাইনে কল করতে পারেন।",
	},
	{
		ID:       "3",
		Question: "এই কোর্স কি একাডেমিক নাকি জেনারেল IELTS এর জন্য?",
		Answer:   "এই কোর্সটি একাডেমিক এবং জেনারেল উভয় IELTS এর জন্য ডিজাইন করা হয়েছে। কোর্সের বিষয়বস্তু উভয় ধরনের IELTS পরীক্ষার জন্য প্রয়োজনীয় সকল মডিউল কভার করে।",
	},
	{
		ID:       "4",
		Question: "অনলাইনে পড়ার সুবিধা কি?",
		Answer:   "অনলাইন শিক্ষা নমনীয়তা, পুনর্বিবেচনার জন্য রেকর্ড করা লেকচার, ইন্টারঅ্যাক্টিভ উপকরণ, ব্যক্তিগতকৃত প্রতিক্রিয়া এবং খরচ-কার্যকারিতা প্রদান করে।",
	},
}
