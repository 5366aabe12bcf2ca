package portfolio

// GenerateRecommendations emits the ordered list of canned content
// recommendations. Two baseline entries always appear (hero headline,
// experience quantification), a projects entry appears only below 3
// projects, the skills-organization entry always appears, and the
// testimonials entry appears only when testimonials are absent. The
// generator selects which templates to emit; it never synthesizes text
// from profile content.
func GenerateRecommendations(p *Profile) []ContentRecommendation {
	recs := []ContentRecommendation{
		{
			Section:     "hero",
			Priority:    PriorityHigh,
			Title:       "Sharpen the headline",
			Description: "Lead with a one-line value proposition instead of a job title.",
			Rationale:   "Recruiters decide in seconds; a generic title wastes the most visible line on the page.",
			Examples: []string{
				"Full-Stack Engineer | 6+ Years Shipping React & Go Products",
				"Backend Engineer turning legacy systems into cloud-native platforms",
			},
			Keywords: []string{"headline", "value proposition", "positioning"},
			Impact:   "Higher recruiter engagement on first impression",
		},
		{
			Section:     "experience",
			Priority:    PriorityHigh,
			Title:       "Quantify every role",
			Description: "Rewrite experience bullets around measurable outcomes.",
			Rationale:   "Numbers are the fastest credibility signal hiring managers scan for.",
			Examples: []string{
				"Cut API p99 latency 40% by introducing request coalescing",
				"Led a 5-person team delivering a $2M migration three weeks early",
			},
			Keywords: []string{"metrics", "impact", "achievements"},
			Impact:   "Stronger interview conversion from resume screens",
		},
	}

	if len(p.Projects) < 3 {
		recs = append(recs, ContentRecommendation{
			Section:     "projects",
			Priority:    PriorityHigh,
			Title:       "Showcase at least three projects",
			Description: "Add complete project entries with live demos and source links.",
			Rationale:   "A thin project section reads as a lack of shipped work regardless of actual experience.",
			Examples: []string{
				"A deployed side project with a one-paragraph architecture note",
				"An open-source tool with usage numbers in the README",
			},
			Keywords: []string{"portfolio", "demo", "github"},
			Impact:   "Concrete proof of ability to ship end-to-end",
		})
	}

	recs = append(recs, ContentRecommendation{
		Section:     "skills",
		Priority:    PriorityMedium,
		Title:       "Organize skills by category",
		Description: "Group skills into frontend, backend, and infrastructure with honest proficiency levels.",
		Rationale:   "A flat keyword dump is hard to scan and triggers ATS keyword-stuffing suspicion.",
		Examples: []string{
			"Frontend: React, TypeScript, Tailwind",
			"Infrastructure: Docker, Kubernetes, Terraform",
		},
		Keywords: []string{"skills matrix", "categories", "proficiency"},
		Impact:   "Faster skim for both recruiters and ATS parsers",
	})

	if len(p.Testimonials) == 0 {
		recs = append(recs, ContentRecommendation{
			Section:     "testimonials",
			Priority:    PriorityMedium,
			Title:       "Collect testimonials",
			Description: "Ask two or three colleagues for short, specific endorsements.",
			Rationale:   "Third-party voices carry weight self-descriptions never will.",
			Examples: []string{
				"A quote from a manager about delivery under pressure",
				"A quote from a teammate about code review quality",
			},
			Keywords: []string{"social proof", "endorsements", "references"},
			Impact:   "Trust signal that differentiates from similar profiles",
		})
	}

	return recs
}

// IdentifyMissingElements flags absent optional sections. The order of
// checks is fixed; each is independent of the others. Experience is
// deliberately not checked here — the section scorer already covers it.
func IdentifyMissingElements(p *Profile) []string {
	var missing []string
	if len(p.Projects) < 3 {
		missing = append(missing, "Fewer than 3 projects — add case studies of shipped work")
	}
	if len(p.Certifications) == 0 {
		missing = append(missing, "No certifications listed — consider cloud or language credentials")
	}
	if len(p.Testimonials) == 0 {
		missing = append(missing, "No testimonials — third-party endorsements build trust")
	}
	if len(p.BlogPosts) == 0 {
		missing = append(missing, "No blog posts — technical writing demonstrates communication skills")
	}
	if len(p.OpenSource) == 0 {
		missing = append(missing, "No open-source activity — public code is verifiable proof of skill")
	}
	if len(p.SpeakingEvents) == 0 {
		missing = append(missing, "No speaking events — talks and meetups expand professional reach")
	}
	return missing
}
