package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
)

//go:embed data/*.json
var dataFS embed.FS

type Repository interface {
	Projects() []Project
	FeaturedProjects() []Project
	SkillCategories() []SkillCategory
	Experience() []Experience
	SocialLinks() []SocialLink
	// BlogPosts lists the posts newest first, without their content.
	BlogPosts() []BlogPost
	BlogPost(slug string) (BlogPost, error)
	// ProjectRepos returns the GitHub identifiers of the projects that have one.
	ProjectRepos() []string
}

// NewRepository decodes the embedded catalogue once. Every getter hands out a
// copy so callers can not alter the shared data.
func NewRepository() (Repository, error) {
	repo := &repositoryImpl{}

	files := []struct {
		name string
		dst  any
	}{
		{"data/projects.json", &repo.projects},
		{"data/skills.json", &repo.skills},
		{"data/experience.json", &repo.experience},
		{"data/social.json", &repo.social},
		{"data/blog.json", &repo.blog},
	}
	for _, f := range files {
		b, err := dataFS.ReadFile(f.name)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(b, f.dst); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", f.name, err)
		}
	}

	// dates are YYYY-MM-DD, so string order is date order
	slices.SortStableFunc(repo.blog, func(a, b BlogPost) int {
		return strings.Compare(b.Date, a.Date)
	})

	return repo, nil
}

type repositoryImpl struct {
	projects   []Project
	skills     []SkillCategory
	experience []Experience
	social     []SocialLink
	blog       []BlogPost
}

func (r *repositoryImpl) Projects() []Project {
	return slices.Clone(r.projects)
}

func (r *repositoryImpl) FeaturedProjects() []Project {
	featured := make([]Project, 0, len(r.projects))
	for _, p := range r.projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

func (r *repositoryImpl) SkillCategories() []SkillCategory {
	return slices.Clone(r.skills)
}

func (r *repositoryImpl) Experience() []Experience {
	return slices.Clone(r.experience)
}

func (r *repositoryImpl) SocialLinks() []SocialLink {
	return slices.Clone(r.social)
}

func (r *repositoryImpl) BlogPosts() []BlogPost {
	posts := make([]BlogPost, len(r.blog))
	for i, p := range r.blog {
		p.Content = ""
		posts[i] = p
	}
	return posts
}

func (r *repositoryImpl) BlogPost(slug string) (BlogPost, error) {
	for _, p := range r.blog {
		if p.Slug == slug {
			return p, nil
		}
	}
	return BlogPost{}, apperr.ErrNoResult
}

func (r *repositoryImpl) ProjectRepos() []string {
	repos := make([]string, 0, len(r.projects))
	for _, p := range r.projects {
		if p.Repo != "" {
			repos = append(repos, p.Repo)
		}
	}
	return repos
}
