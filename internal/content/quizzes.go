// Package content holds the built-in site content: the quiz catalog and
// the seed stories shown on the wall before any submission is approved.
package content

import "awareness-hub-service/internal/domain"

// Quizzes returns the game catalog in unlock order. RequiredScore is the
// minimum best score on the preceding quiz; the first quiz has none.
func Quizzes() []domain.Quiz {
	return []domain.Quiz{
		{
			ID:    "myth-or-fact",
			Title: "Myth or Fact",
			Order: 0,
			Questions: []domain.Question{
				{
					ID:     "mf-1",
					Prompt: "Can HIV be transmitted through casual contact like handshakes?",
					Options: []domain.Option{
						{Text: "Yes, easily"}, {Text: "No, never"},
						{Text: "Only in rare cases"}, {Text: "Depends on temperature"},
					},
					CorrectIdx:  1,
					Explanation: "HIV cannot be transmitted through casual contact. It requires specific blood-to-blood or sexual contact.",
				},
				{
					ID:     "mf-2",
					Prompt: "Is it possible for an HIV-positive person with undetectable viral load to transmit HIV?",
					Options: []domain.Option{
						{Text: "Yes, always"}, {Text: "No, never (U=U)"},
						{Text: "Sometimes"}, {Text: "Only to partners"},
					},
					CorrectIdx:  1,
					Explanation: "U=U: Undetectable = Untransmittable. With proper treatment, HIV cannot be passed on.",
				},
				{
					ID:     "mf-3",
					Prompt: "Can you get HIV from sharing food or drinks?",
					Options: []domain.Option{
						{Text: "Yes"}, {Text: "No"}, {Text: "Maybe"}, {Text: "Only if bleeding"},
					},
					CorrectIdx:  1,
					Explanation: "No. HIV is destroyed by stomach acid and cannot survive in saliva.",
				},
			},
		},
		{
			ID:            "prevention-steps",
			Title:         "Prevention Steps",
			Order:         1,
			RequiredScore: 2,
			Questions: []domain.Question{
				{
					ID:     "ps-1",
					Prompt: "What is the most effective prevention method for sexual transmission?",
					Options: []domain.Option{
						{Text: "Condoms"}, {Text: "Testing"},
						{Text: "Communication"}, {Text: "All of the above"},
					},
					CorrectIdx:  3,
					Explanation: "All methods together provide the strongest protection: condoms, regular testing, open communication.",
				},
				{
					ID:     "ps-2",
					Prompt: "What does PrEP stand for?",
					Options: []domain.Option{
						{Text: "Pre-exposure Prophylaxis"}, {Text: "Preventive Reduction Program"},
						{Text: "Post-exposure Prevention"}, {Text: "Pre-approval Plan"},
					},
					CorrectIdx:  0,
					Explanation: "PrEP is a medication taken before potential exposure to HIV to prevent infection.",
				},
				{
					ID:     "ps-3",
					Prompt: "How often should someone at risk get tested for HIV?",
					Options: []domain.Option{
						{Text: "Once a year"}, {Text: "Every 6 months"},
						{Text: "Every 3 months"}, {Text: "Depends on risk level"},
					},
					CorrectIdx:  3,
					Explanation: "Testing frequency depends on individual risk factors. Consult healthcare providers for personalized recommendations.",
				},
			},
		},
		{
			ID:            "safe-choices",
			Title:         "Safe Choices",
			Order:         2,
			RequiredScore: 2,
			Questions: []domain.Question{
				{
					ID:     "sc-1",
					Prompt: "In which situation should you get tested for HIV?",
					Options: []domain.Option{
						{Text: "Only if symptomatic"}, {Text: "After unprotected sex"},
						{Text: "Regularly (at least once)"}, {Text: "All of the above"},
					},
					CorrectIdx:  3,
					Explanation: "Regular testing is recommended, especially after risky situations.",
				},
				{
					ID:     "sc-2",
					Prompt: "What should you do if you think you have been exposed to HIV?",
					Options: []domain.Option{
						{Text: "Wait and see"}, {Text: "Visit a clinic immediately"},
						{Text: "Get PEP within 72 hours"}, {Text: "Tell someone you trust"},
					},
					CorrectIdx:  2,
					Explanation: "Post-Exposure Prophylaxis (PEP) is effective if taken within 72 hours of potential exposure.",
				},
			},
		},
		{
			ID:            "knowledge-quest",
			Title:         "Knowledge Quest",
			Order:         3,
			RequiredScore: 1,
			Questions: []domain.Question{
				{
					ID:     "kq-1",
					Prompt: "How long can HIV survive outside the body?",
					Options: []domain.Option{
						{Text: "Minutes"}, {Text: "Hours"}, {Text: "Seconds"}, {Text: "Days"},
					},
					CorrectIdx:  2,
					Explanation: "HIV is a fragile virus and dies within seconds outside the body.",
				},
				{
					ID:     "kq-2",
					Prompt: "What is the CD4 count important for in HIV?",
					Options: []domain.Option{
						{Text: "Blood pressure"}, {Text: "Immune strength"},
						{Text: "Sugar levels"}, {Text: "Heart rate"},
					},
					CorrectIdx:  1,
					Explanation: "CD4 count measures the strength of your immune system when living with HIV.",
				},
				{
					ID:     "kq-3",
					Prompt: "What does ART stand for?",
					Options: []domain.Option{
						{Text: "Antiretroviral Therapy"}, {Text: "Anti-reverse Treatment"},
						{Text: "Antiviral Response Team"}, {Text: "Advanced Rapid Test"},
					},
					CorrectIdx:  0,
					Explanation: "Antiretroviral Therapy is the medical treatment for HIV that helps control the virus.",
				},
			},
		},
	}
}
