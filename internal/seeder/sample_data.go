package seeder

import "intern-match/internal/domain/profile"

// SamplePostings are the demo internships loaded into an empty store.
func SamplePostings() []profile.Posting {
	return []profile.Posting{
		{
			Title:            "Data Science Intern",
			Company:          "TechCorp India",
			Location:         "Bangalore, Karnataka",
			Department:       "Analytics",
			Duration:         "6 months",
			Stipend:          "₹25,000/month",
			WorkMode:         "Hybrid",
			Description:      "Work on cutting-edge ML projects with real-world datasets",
			RequiredSkills:   "Python, Machine Learning, Pandas, NumPy, Scikit-learn",
			Requirements:     "Currently pursuing B.Tech/M.Tech in CS/related field",
			Benefits:         []string{"Mentorship", "Certificate", "Pre-placement offer"},
			Deadline:         "30 days",
			InterviewProcess: "Resume Screening → Coding Test → 2 Technical Rounds",
			Mentorship:       "1-on-1 mentorship with senior data scientists",
		},
		{
			Title:            "Full Stack Developer Intern",
			Company:          "StartupXYZ",
			Location:         "Mumbai, Maharashtra",
			Department:       "Engineering",
			Duration:         "3 months",
			Stipend:          "₹20,000/month",
			WorkMode:         "Remote",
			Description:      "Build scalable web applications using modern tech stack",
			RequiredSkills:   "React, Node.js, JavaScript, MongoDB, Express",
			Requirements:     "Strong understanding of web development fundamentals",
			Benefits:         []string{"Flexible hours", "Learning budget", "Team outings"},
			Deadline:         "15 days",
			InterviewProcess: "Resume Screening → Assignment → Technical Interview",
			Mentorship:       "Weekly code reviews and pairing sessions",
		},
		{
			Title:            "AI Research Intern",
			Company:          "IIT Bombay Research Lab",
			Location:         "Mumbai, Maharashtra",
			Department:       "Computer Vision Lab",
			Duration:         "6 months",
			Stipend:          "₹30,000/month",
			WorkMode:         "On-site",
			Description:      "Research on computer vision and deep learning applications",
			RequiredSkills:   "Python, TensorFlow, PyTorch, Deep Learning, Computer Vision",
			Requirements:     "Master's student or final year B.Tech with research interest",
			Benefits:         []string{"Research paper publication", "Conference opportunities", "Academic credit"},
			Deadline:         "45 days",
			InterviewProcess: "Resume Screening → Research presentation → Faculty interview",
			Mentorship:       "Direct guidance from PhD students and professors",
		},
		{
			Title:            "Product Management Intern",
			Company:          "Flipkart",
			Location:         "Bangalore, Karnataka",
			Department:       "Product",
			Duration:         "4 months",
			Stipend:          "₹35,000/month",
			WorkMode:         "On-site",
			Description:      "Drive product initiatives for India's largest e-commerce platform",
			RequiredSkills:   "Product Analytics, SQL, User Research, Agile, Communication",
			Requirements:     "MBA/B.Tech final year, strong analytical skills",
			Benefits:         []string{"PPO", "Networking", "Product launch experience"},
			Deadline:         "20 days",
			InterviewProcess: "Resume Screening → Case study → Product rounds",
			Mentorship:       "Shadow senior PMs and lead mini-projects",
		},
		{
			Title:            "DevOps Intern",
			Company:          "Infosys",
			Location:         "Pune, Maharashtra",
			Department:       "Cloud Infrastructure",
			Duration:         "6 months",
			Stipend:          "₹18,000/month",
			WorkMode:         "Hybrid",
			Description:      "Automate deployment pipelines and manage cloud infrastructure",
			RequiredSkills:   "AWS, Docker, Kubernetes, CI/CD, Linux, Python",
			Requirements:     "Understanding of cloud computing and automation",
			Benefits:         []string{"AWS certification", "Training programs", "Full-time offer"},
			Deadline:         "60 days",
			InterviewProcess: "Resume Screening → Technical test → HR round",
			Mentorship:       "Training program with hands-on projects",
		},
		{
			Title:            "UI/UX Design Intern",
			Company:          "Zomato",
			Location:         "Gurgaon, Haryana",
			Department:       "Design",
			Duration:         "3 months",
			Stipend:          "₹22,000/month",
			WorkMode:         "Remote",
			Description:      "Design delightful user experiences for millions of users",
			RequiredSkills:   "Figma, Adobe XD, User Research, Prototyping, Design Thinking",
			Requirements:     "Portfolio showcasing UX/UI projects",
			Benefits:         []string{"Design mentorship", "Portfolio building", "Stipend"},
			Deadline:         "25 days",
			InterviewProcess: "Portfolio review → Design challenge → Team interview",
			Mentorship:       "Work directly with senior designers on live projects",
		},
	}
}

func SampleCandidates() []profile.Candidate {
	return []profile.Candidate{
		{
			Name:           "Rahul Sharma",
			Email:          "rahul.sharma@example.com",
			Phone:          "+91 98765 43210",
			Education:      "B.Tech Computer Science",
			Institution:    "IIT Delhi",
			GraduationYear: "2026",
			Skills:         "Python, Machine Learning, TensorFlow, Data Analysis, SQL",
			Experience:     "Completed ML course from Coursera, worked on 3 projects",
			Interests:      "Deep Learning, Computer Vision, AI Research",
			Availability:   "Immediate",
			WorkMode:       "Hybrid",
			Certifications: []string{"Google Machine Learning Crash Course", "AWS Cloud Practitioner"},
			Portfolio:      "https://rahulsharma.dev",
			LinkedIn:       "linkedin.com/in/rahulsharma",
			GitHub:         "github.com/rahulsharma",
			ResumeScore:    88,
		},
		{
			Name:           "Priya Patel",
			Email:          "priya.patel@example.com",
			Phone:          "+91 87654 32109",
			Education:      "B.Tech Information Technology",
			Institution:    "NIT Trichy",
			GraduationYear: "2025",
			Skills:         "React, JavaScript, Node.js, MongoDB, HTML, CSS",
			Experience:     "Built 5 full-stack projects, freelanced for 2 startups",
			Interests:      "Web Development, Cloud Computing, Open Source",
			Availability:   "From June 2025",
			WorkMode:       "Remote",
			Certifications: []string{"Meta React Developer", "Full Stack Development - Udemy"},
			Portfolio:      "https://priyapatel.com",
			LinkedIn:       "linkedin.com/in/priyapatel",
			GitHub:         "github.com/priyapatel",
			ResumeScore:    92,
		},
		{
			Name:           "Arjun Reddy",
			Email:          "arjun.reddy@example.com",
			Phone:          "+91 76543 21098",
			Education:      "MBA (Marketing)",
			Institution:    "IIM Ahmedabad",
			GraduationYear: "2026",
			Skills:         "Product Management, SQL, Data Analytics, Market Research, Agile",
			Experience:     "Summer internship at Paytm, led 2 product launches",
			Interests:      "Product Strategy, User Experience, Growth Hacking",
			Availability:   "Immediate",
			WorkMode:       "On-site",
			Certifications: []string{"Product Management - Product School", "Google Analytics"},
			Portfolio:      "https://arjunreddy.in",
			LinkedIn:       "linkedin.com/in/arjunreddy",
			GitHub:         "github.com/arjunreddy",
			ResumeScore:    85,
		},
	}
}
