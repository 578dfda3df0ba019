package repostats

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	// FetchAll looks every identifier up concurrently. Identifiers whose
	// lookup fails are left out of the result, so it never fails as a whole.
	FetchAll(ctx context.Context, repos []string) map[string]RepoStats
}

func NewService(client Client, concurrency int) Service {
	return serviceImpl{client: client, concurrency: max(concurrency, 1)}
}

type serviceImpl struct {
	client      Client
	concurrency int
}

func (s serviceImpl) FetchAll(ctx context.Context, repos []string) map[string]RepoStats {
	zlog := zerolog.Ctx(ctx)
	result := make(map[string]RepoStats, len(repos))

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	seen := make(map[string]struct{}, len(repos))
	for _, repo := range repos {
		if _, ok := seen[repo]; ok {
			continue
		}
		seen[repo] = struct{}{}

		g.Go(func() error {
			stats, err := s.client.Get(ctx, repo)
			if err != nil {
				zlog.Debug().Err(err).Str("repo", repo).Msg("can not fetch repo stats, skipping")
				return nil
			}
			mu.Lock()
			result[repo] = stats
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return result
}
