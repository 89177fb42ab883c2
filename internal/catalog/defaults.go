package catalog

// DefaultRoles returns the built-in role profiles used when no catalog file is
// configured. Each call returns a fresh slice so callers cannot mutate the
// defaults of another catalog.
func DefaultRoles() []RoleProfile {
	return []RoleProfile{
		{
			Name:           "Data Scientist",
			Skills:         []string{"Python", "R", "SQL", "Machine Learning", "Deep Learning", "Statistics", "Data Visualization"},
			Tools:          []string{"Pandas", "NumPy", "Scikit-learn", "TensorFlow", "Matplotlib"},
			Certifications: []string{"IBM Data Science Professional Certificate", "Google Data Analytics Certificate"},
		},
		{
			Name:           "Web Developer",
			Skills:         []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "REST APIs", "Responsive Design"},
			Tools:          []string{"VS Code", "Chrome DevTools", "Git", "Webpack"},
			Certifications: []string{"Meta Front-End Developer", "freeCodeCamp Responsive Web Design"},
		},
		{
			Name:           "AI Engineer",
			Skills:         []string{"Python", "TensorFlow", "PyTorch", "Computer Vision", "NLP", "Model Deployment"},
			Tools:          []string{"TensorFlow", "PyTorch", "OpenCV", "Hugging Face Transformers"},
			Certifications: []string{"TensorFlow Developer Certificate", "AI For Everyone by Andrew Ng"},
		},
		{
			Name:           "ML Engineer",
			Skills:         []string{"Python", "Scikit-learn", "Machine Learning", "Deep Learning", "Data Engineering"},
			Tools:          []string{"TensorFlow", "PyTorch", "Keras", "Airflow", "Docker"},
			Certifications: []string{"AWS Machine Learning Specialty", "TensorFlow Developer Certificate"},
		},
		{
			Name:           "Software Engineer",
			Skills:         []string{"Java", "Python", "C++", "Algorithms", "Data Structures"},
			Tools:          []string{"Git", "VS Code", "Jira", "Docker"},
			Certifications: []string{"Oracle Java Certification", "AWS Certified Developer"},
		},
		{
			Name:           "DevOps Engineer",
			Skills:         []string{"CI/CD", "Automation", "Cloud", "Docker", "Kubernetes"},
			Tools:          []string{"Jenkins", "Docker", "Kubernetes", "Terraform", "Git"},
			Certifications: []string{"AWS DevOps Engineer", "Docker Certified Associate"},
		},
		{
			Name:           "Cloud Engineer",
			Skills:         []string{"AWS", "Azure", "GCP", "Networking", "Cloud Architecture"},
			Tools:          []string{"Terraform", "Ansible", "Kubernetes", "Docker"},
			Certifications: []string{"AWS Solutions Architect", "Google Cloud Professional"},
		},
		{
			Name:           "Cybersecurity Analyst",
			Skills:         []string{"Network Security", "Penetration Testing", "Incident Response", "Threat Analysis"},
			Tools:          []string{"Wireshark", "Nmap", "Metasploit", "Splunk"},
			Certifications: []string{"CEH", "CISSP", "CompTIA Security+"},
		},
		{
			Name:           "Business Analyst",
			Skills:         []string{"Requirement Analysis", "SQL", "Data Visualization", "Documentation"},
			Tools:          []string{"Excel", "Power BI", "Tableau", "Jira"},
			Certifications: []string{"CBAP", "IIBA Certification"},
		},
		{
			Name:           "Product Manager",
			Skills:         []string{"Roadmap Planning", "Market Research", "User Stories", "Stakeholder Management"},
			Tools:          []string{"Jira", "Trello", "Aha!", "Miro"},
			Certifications: []string{"Certified Scrum Product Owner", "PMP"},
		},
		{
			Name:           "QA Engineer",
			Skills:         []string{"Test Automation", "Manual Testing", "Selenium", "Performance Testing"},
			Tools:          []string{"Selenium", "Jira", "Postman", "TestRail"},
			Certifications: []string{"ISTQB Foundation", "Certified Software Tester"},
		},
	}
}
