package submissions

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/features/submissions/storage"
	"gloopclub_backend/internals/features/submissions/submissions/dto"
	"gloopclub_backend/internals/features/submissions/submissions/model"
)

type SubmissionSeed struct {
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	ImageURL      string                 `json:"imageUrl"`
	WalletAddress string                 `json:"walletAddress"`
	TwitterHandle *string                `json:"twitterHandle"`
	DiscordHandle *string                `json:"discordHandle"`
	Status        model.SubmissionStatus `json:"status"`
}

// SeedSubmissions inserts every seed whose title is not stored yet and brings the
// status of every seeded title in line with the file, so a rerun repairs a run
// that stopped between insert and status update. Relative image paths are
// resolved against imageBase. Returns the number of inserted rows.
func SeedSubmissions(ctx context.Context, store storage.Storage, log logrus.FieldLogger, data []byte, imageBase string) (int, error) {
	var seeds []SubmissionSeed
	if err := sonic.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("decode submission seeds: %w", err)
	}

	inputs := make([]model.SubmissionInput, len(seeds))
	for i := range seeds {
		s := &seeds[i]
		if s.Status == "" {
			s.Status = model.SubmissionPending
		} else if !s.Status.Valid() {
			return 0, fmt.Errorf("seed %q: %w: %q", s.Title, storage.ErrInvalidStatus, s.Status)
		}

		imageURL, err := resolveImage(imageBase, s.ImageURL)
		if err != nil {
			return 0, fmt.Errorf("seed %q: %w", s.Title, err)
		}
		req := dto.CreateSubmissionRequest{
			Title:         s.Title,
			Description:   s.Description,
			ImageURL:      imageURL,
			WalletAddress: s.WalletAddress,
			TwitterHandle: s.TwitterHandle,
			DiscordHandle: s.DiscordHandle,
		}
		if violations := req.Validate(); violations != nil {
			return 0, fmt.Errorf("seed %q: %w", s.Title, violations)
		}
		inputs[i] = req.ToInput()
	}

	existing, err := store.ListSubmissions(ctx)
	if err != nil {
		return 0, err
	}
	byTitle := make(map[string]model.Submission, len(existing))
	for _, row := range existing {
		byTitle[row.Title] = row
	}

	inserted := 0
	for i, s := range seeds {
		row, ok := byTitle[s.Title]
		if ok {
			log.Infof("ℹ️ submission %q already exists, skipped", s.Title)
		} else {
			created, err := store.CreateSubmission(ctx, inputs[i])
			if err != nil {
				return inserted, err
			}
			inserted++
			row = *created
			byTitle[s.Title] = row
		}

		if row.Status != s.Status {
			if _, err := store.UpdateSubmissionStatus(ctx, row.ID, s.Status); err != nil {
				return inserted, err
			}
			if ok {
				log.Infof("🔁 submission %q status set to %s", s.Title, s.Status)
			}
		}
	}

	if inserted == 0 {
		log.Info("ℹ️ no new submissions to seed")
	} else {
		log.Infof("✅ seeded %d submissions", inserted)
	}
	return inserted, nil
}

func resolveImage(base, ref string) (string, error) {
	if base == "" || !strings.HasPrefix(ref, "/") {
		return ref, nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("image base: %w", err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("image path: %w", err)
	}
	return b.ResolveReference(r).String(), nil
}
