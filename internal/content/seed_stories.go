package content

import (
	"time"

	"awareness-hub-service/internal/domain"
)

// SeedStories returns the built-in stories shown on the wall. A remote
// story with a colliding id replaces the seed entry when merged.
func SeedStories(now time.Time) []domain.Story {
	return []domain.Story{
		{
			ID:        "seed-1",
			Nickname:  "Hope Bearer",
			AgeRange:  "25-34",
			Region:    "Kerala",
			Language:  "en",
			Theme:     domain.ThemeSuccess,
			BodyText:  "After my diagnosis 5 years ago, I thought my life was over. Today, with proper treatment and support, I live a normal, healthy life. I work, travel, and help others. HIV does not define me, my courage does. The medication is simple, just one pill a day, and it keeps me undetectable. To anyone newly diagnosed: breathe. It gets better.",
			Tags:      []string{"Undetectable", "LivingPositively"},
			Status:    domain.StoryApproved,
			CreatedAt: now.AddDate(0, 0, -14),
			Reactions: map[domain.ReactionKind]int{
				domain.ReactStayStrong:     120,
				domain.ReactWeStandWithYou: 85,
				domain.ReactYouInspireMe:   200,
			},
		},
		{
			ID:        "seed-2",
			Nickname:  "Warrior Mom",
			AgeRange:  "35-44",
			Region:    "Tamil Nadu",
			Language:  "en",
			Theme:     domain.ThemeSupport,
			BodyText:  "Finding a support group changed everything. Learning that I wasn't alone, hearing others' experiences, and sharing mine transformed my journey. We lift each other up every single day. My children are HIV negative because of the treatment I took during pregnancy. Science is a miracle.",
			Tags:      []string{"Motherhood", "SupportGroup"},
			Status:    domain.StoryApproved,
			CreatedAt: now.AddDate(0, -1, 0),
			Reactions: map[domain.ReactionKind]int{
				domain.ReactStayStrong:     150,
				domain.ReactWeStandWithYou: 300,
				domain.ReactYouInspireMe:   180,
			},
		},
		{
			ID:        "seed-3",
			Nickname:  "Silent Fighter",
			AgeRange:  "18-24",
			Region:    "Karnataka",
			Language:  "en",
			Theme:     domain.ThemeStigma,
			BodyText:  "I was terrified to tell my family. The stigma in our society is heavy. But when I finally gathered the courage, my brother just hugged me. He said, \"You are still you.\" That moment broke the chains of fear I was living in. We need to talk more openly to end this stigma.",
			Tags:      []string{"Family", "BreakingStigma"},
			Status:    domain.StoryApproved,
			CreatedAt: now.AddDate(0, 0, -2),
			Reactions: map[domain.ReactionKind]int{
				domain.ReactStayStrong:     400,
				domain.ReactWeStandWithYou: 250,
				domain.ReactYouInspireMe:   120,
			},
		},
	}
}
