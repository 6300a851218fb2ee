package content

// Default returns the literal library the site ships with.
func Default() *Library {
	return &Library{
		Experience: []Experience{
			{
				ID:           1,
				Title:        "Presentation Expert",
				Organization: "Target",
				Location:     "Minneapolis, MN",
				Period:       "Aug 2023 - Present",
				Bullets: []string{
					"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
					"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
					"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
				},
				Skills:  []string{"Workflow Planning", "Inventory", "Cross-team Communication"},
				Variant: VariantProfessional,
				Image:   "images/TargetLogo.jpg",
			},
			{
				ID:           2,
				Title:        "Manager",
				Organization: "Jasons Catered Events",
				Location:     "Minneapolis, MN",
				Period:       "Aug 2016 - Present",
				Bullets: []string{
					"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
					"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays and improving communication",
					"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime.",
				},
				Skills:  []string{"Team Leadership", "Event Management", "AV Troubleshooting"},
				Variant: VariantLeadership,
				Image:   "images/jasonsCateringLogo.png",
			},
			{
				ID:           3,
				Title:        "Project Management Certification",
				Organization: "CompTIA",
				Location:     "Remote",
				Period:       "July 2022 - Present",
				Bullets: []string{
					"Certified in agile project management methodology",
					"Planned and tracked the senior machine learning project from proposal to delivery",
				},
				Skills:  []string{"Agile", "Planning"},
				Variant: VariantLeadership,
				Image:   "images/comptiaCert.png",
			},
		},
		Projects: []Project{
			{
				ID:              1,
				Title:           "Terminal Mail",
				Description:     "A terminal-based email client with fuzzy finding.",
				LongDescription: "A terminal-based email client built in Go with fuzzyfinder capabilities using the Charmbracelet TUI framework and go-imap.",
				Image:           "images/projects/terminal-mail.png",
				TechStack:       []string{"Go", "Bubble Tea", "go-imap", "fuzzyfinder"},
				Category:        "CLI Tools",
				GithubURL:       "https://github.com/Zachkp",
				Features: []string{
					"IMAP inbox browsing from the terminal",
					"Fuzzy search across folders and messages",
					"Keyboard-driven navigation",
				},
			},
			{
				ID:              2,
				Title:           "Terminal Music",
				Description:     "A terminal music player for YouTube Music.",
				LongDescription: "A terminal-based music streaming application built in Go with an elegant TUI interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.",
				Image:           "images/projects/terminal-music.png",
				TechStack:       []string{"Go", "Bubble Tea", "yt-dlp", "mpv"},
				Category:        "CLI Tools",
				GithubURL:       "https://github.com/Zachkp",
				Features: []string{
					"Search and queue tracks without leaving the shell",
					"Playback through mpv",
					"Playlist management",
				},
			},
			{
				ID:              3,
				Title:           "Game Recommender",
				Description:     "Content-based game recommendations with interactive charts.",
				LongDescription: "A machine learning-powered web application that uses TF-IDF vectorization and cosine similarity to recommend games based on content analysis, featuring interactive data visualizations and real-time filtering by user reviews and ratings.",
				Image:           "images/projects/game-recommender.png",
				TechStack:       []string{"Python", "scikit-learn", "pandas"},
				Category:        "Machine Learning",
				Features: []string{
					"TF-IDF vectorization of game descriptions",
					"Cosine similarity ranking",
					"Filtering by reviews and ratings",
					"Interactive data visualizations",
				},
			},
			{
				ID:              4,
				Title:           "Portfolio Website",
				Description:     "This site, served by Go and Gin with HTMX.",
				LongDescription: "A modern, responsive portfolio website built with Go, Gin framework, and HTMX for dynamic interactions, styled with Tailwind CSS and enhanced with Alpine.js for seamless client-side interactivity without traditional JavaScript frameworks.",
				Image:           "images/projects/portfolio.png",
				TechStack:       []string{"Go", "Gin", "HTMX", "Tailwind CSS", "Alpine.js", "SQLite"},
				Category:        "Web",
				GithubURL:       "https://github.com/Zachkp",
				Features: []string{
					"Server-rendered sections with HTMX fragment swaps",
					"Privacy-conscious visitor tracking",
					"Admin dashboard",
				},
			},
		},
		Skills: []Skill{
			{Name: "Go", Proficiency: 85, Category: "Backend", Description: "Services, CLIs and terminal UIs"},
			{Name: "Gin", Proficiency: 80, Category: "Backend", Description: "HTTP routing and HTML rendering for Go web apps"},
			{Name: "HTMX", Proficiency: 75, Category: "Frontend", Description: "Hypermedia-driven interactivity with server-rendered fragments"},
			{Name: "Tailwind CSS", Proficiency: 70, Category: "Frontend", Description: "Utility-first styling"},
			{Name: "Alpine.js", Proficiency: 60, Category: "Frontend", Description: "Small client-side behaviors sprinkled into markup"},
			{Name: "Python", Proficiency: 75, Category: "Programming", Description: "Data processing and machine learning prototypes"},
			{Name: "scikit-learn", Proficiency: 65, Category: "Machine Learning", Description: "Vectorization, similarity and classic models"},
			{Name: "SQLite", Proficiency: 70, Category: "Database", Description: "Embedded relational storage"},
			{Name: "Git", Proficiency: 80, Category: "Tools", Description: "Version control and collaboration"},
			{Name: "Linux", Proficiency: 75, Category: "Tools", Description: "Day-to-day development environment"},
		},
	}
}
