package portfolio

import (
	"net/url"
	"strings"
)

// skillIcons maps common skill names to devicon URLs. Lookup is
// case-insensitive on the trimmed name.
var skillIcons = map[string]string{
	"javascript": "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/javascript/javascript-original.svg",
	"typescript": "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/typescript/typescript-original.svg",
	"react":      "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/react/react-original.svg",
	"next.js":    "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/nextjs/nextjs-original.svg",
	"vue":        "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/vuejs/vuejs-original.svg",
	"angular":    "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/angularjs/angularjs-original.svg",
	"node.js":    "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/nodejs/nodejs-original.svg",
	"go":         "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/go/go-original.svg",
	"python":     "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/python/python-original.svg",
	"java":       "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/java/java-original.svg",
	"rust":       "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/rust/rust-original.svg",
	"postgresql": "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/postgresql/postgresql-original.svg",
	"mysql":      "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/mysql/mysql-original.svg",
	"redis":      "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/redis/redis-original.svg",
	"mongodb":    "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/mongodb/mongodb-original.svg",
	"docker":     "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/docker/docker-original.svg",
	"kubernetes": "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/kubernetes/kubernetes-plain.svg",
	"terraform":  "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/terraform/terraform-original.svg",
	"aws":        "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/amazonwebservices/amazonwebservices-original-wordmark.svg",
	"graphql":    "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/graphql/graphql-plain.svg",
	"html":       "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/html5/html5-original.svg",
	"css":        "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/css3/css3-original.svg",
	"tailwind":   "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/tailwindcss/tailwindcss-original.svg",
	"git":        "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/git/git-original.svg",
}

// SkillIconURL resolves a skill name to an icon URL, falling back to a
// generated letter-avatar placeholder for unknown skills.
func SkillIconURL(name string) string {
	if u, ok := skillIcons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return u
	}
	return "https://ui-avatars.com/api/?size=64&name=" + url.QueryEscape(name)
}
