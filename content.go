package main

import "strings"

type Profile struct {
	Name     string
	Role     string
	Roles    []string // rotated in the hero, Role first
	Greeting string
	Email    string
	Location string
	GitHub   string
	LinkedIn string
}

type Highlight struct {
	Title       string
	Description string
}

type TimelineItem struct {
	Kind         string // education, experience or certification
	Title        string
	Organization string
	Location     string
	Date         string
	Description  string
	Link         string
}

type Skill struct {
	Name  string
	Level int // 0-100
}

type SkillCategory struct {
	Name   string
	Skills []Skill
}

var (
	Me = Profile{
		Name:     "Samyog Khadka",
		Role:     "Full Stack Developer",
		Roles:    []string{"Full Stack Developer", "BCA Student", "Problem Solver", "Tech Enthusiast"},
		Greeting: "Hare Krishna!",
		Email:    "samyog@example.com",
		Location: "Kathmandu, Nepal",
		GitHub:   "https://github.com/samyog7901",
		LinkedIn: "https://linkedin.com",
	}

	AboutMe = `I build end-to-end web applications and enjoy turning rough ideas into
	things people can actually use. Most of my projects start as a way to learn something
	new, whether that is a framework, a database, or a better way to structure code.`

	Highlights = []Highlight{
		{"Full Stack Development", "Building end-to-end web applications with modern technologies"},
		{"Clean Code", "Writing maintainable and efficient code following best practices"},
		{"Problem Solver", "Turning complex challenges into elegant solutions"},
		{"Fast Learner", "Constantly exploring new technologies and frameworks"},
	}

	Timeline = []TimelineItem{
		{
			Kind:         "education",
			Title:        "Bachelor of Computer Application (BCA)",
			Organization: "SchEMS College (Pokhara University)",
			Location:     "Kathmandu, Nepal",
			Date:         "2023 - Present",
			Description:  "Currently pursuing BCA with focus on software development, database management and web technologies. Active participant in coding competitions and technical events.",
		},
		{
			Kind:         "experience",
			Title:        "Full Stack Developer",
			Organization: "Self-Employed / Freelance",
			Location:     "Remote",
			Date:         "2025 - Present",
			Description:  "Building web applications using MERN stack. Developing practical projects to solve real-world problems. Contributing to open-source projects and learning new technologies.",
		},
		{
			Kind:         "certification",
			Title:        "MERN Developer",
			Organization: "Digital Pathshala Itahari",
			Location:     "Online",
			Date:         "2024-2025",
			Description:  "Completed MERN Developer certification. Developed Ecommerce platform as a major project using MongoDB, Express.js, React and Node.js stack.",
			Link:         "https://www.digitalpathshalanepal.com/",
		},
		{
			Kind:         "certification",
			Title:        "Web Development Bootcamp",
			Organization: "Digital Pathshala Itahari",
			Location:     "Online",
			Date:         "2023",
			Description:  "Completed comprehensive web development course covering HTML, CSS, JavaScript, React, Node.js, and MongoDB. Built multiple projects during the program.",
			Link:         "https://www.digitalpathshalanepal.com/",
		},
		{
			Kind:         "education",
			Title:        "Higher Secondary Education",
			Organization: "CCRC College",
			Location:     "Kathmandu, Nepal",
			Date:         "2020 - 2022",
			Description:  "Completed +2 in Science stream with focus on Computer Science. Developed initial interest in programming and software development.",
		},
	}

	Skills = []SkillCategory{
		{"Frontend", []Skill{{"React", 90}, {"Next.js", 85}, {"TypeScript", 80}, {"Tailwind CSS", 95}, {"HTML/CSS", 95}}},
		{"Backend", []Skill{{"Node.js", 85}, {"Express", 80}, {"Python", 70}, {"REST APIs", 85}}},
		{"Database", []Skill{{"MongoDB", 85}, {"PostgreSQL", 70}, {"MySQL", 75}}},
		{"Tools & DevOps", []Skill{{"Git", 90}, {"Docker", 60}, {"Postman", 85}, {"VS Code", 95}}},
	}
)

// timelineFor filters the timeline by kind; "" or "all" returns everything.
func timelineFor(kind string) []TimelineItem {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" || kind == "all" {
		return Timeline
	}
	var items []TimelineItem
	for _, it := range Timeline {
		if it.Kind == kind {
			items = append(items, it)
		}
	}
	return items
}
