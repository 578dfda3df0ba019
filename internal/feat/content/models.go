package content

type Project struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description,omitempty"`
	TechStack       []string `json:"tech_stack"`
	GithubURL       string   `json:"github_url,omitempty"`
	LiveURL         string   `json:"live_url,omitempty"`
	Featured        bool     `json:"featured"`
	Gradient        string   `json:"gradient"`
	// owner/name on GitHub, empty when the project has no public repo
	Repo string `json:"repo,omitempty"`
}

type Skill struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type SkillCategory struct {
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
}

type Experience struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	Location   string   `json:"location,omitempty"`
	Period     string   `json:"period,omitempty"`
	Highlights []string `json:"highlights"`
	Tech       []string `json:"tech"`
}

type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

type BlogPost struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	ReadTime string `json:"read_time"`
	Category string `json:"category"`
	Content  string `json:"content,omitempty"`
}
