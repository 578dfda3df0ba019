package content

import (
	"testing"

	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	projects := repo.Projects()
	require.NotEmpty(t, projects)

	featured := repo.FeaturedProjects()
	require.NotEmpty(t, featured)
	for _, p := range featured {
		require.True(t, p.Featured)
	}
	require.Less(t, len(featured), len(projects))

	require.Contains(t, repo.ProjectRepos(), "sahilKumar1122/NaanStop")
	require.NotEmpty(t, repo.SkillCategories())
	require.NotEmpty(t, repo.Experience())
	require.NotEmpty(t, repo.SocialLinks())
}

func TestRepositoryReturnsCopies(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	projects := repo.Projects()
	projects[0].Title = "changed"
	require.NotEqual(t, "changed", repo.Projects()[0].Title)
}

func TestBlogPosts(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	posts := repo.BlogPosts()
	require.Len(t, posts, 3)
	for i, p := range posts {
		require.Empty(t, p.Content)
		if i > 0 {
			require.GreaterOrEqual(t, posts[i-1].Date, p.Date)
		}
	}

	post, err := repo.BlogPost("full-stack-journey")
	require.NoError(t, err)
	require.Equal(t, "My Journey into Full-Stack Development", post.Title)
	require.NotEmpty(t, post.Content)

	_, err = repo.BlogPost("does-not-exist")
	require.ErrorIs(t, err, apperr.ErrNoResult)
}
