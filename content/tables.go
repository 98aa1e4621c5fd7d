package content

// Headline and Intro appear on the home page.
const (
	Headline = "Python & ML intern · data science and analytics"
	Intro    = "An intern fascinated by machine learning, building scalable ML solutions and web applications. Specialised in Python, TensorFlow and data visualisation."
)

var languages = []Skill{
	{"Python", Advanced},
	{"SQL", Intermediate},
	{"Java", Intermediate},
	{"ML", Intermediate},
	{"Data visualization", Intermediate},
}

var frameworks = []Skill{
	{"TensorFlow", Intermediate},
	{"PyTorch", Intermediate},
	{"SVM", Advanced},
	{"matplotlib", Intermediate},
	{"Streamlit", Advanced},
	{"CNN", Intermediate},
	{"ViTs", Intermediate},
}

var tools = []Skill{
	{"VS Code", Advanced},
	{"Jupyter Notebook", Intermediate},
	{"Git", Advanced},
	{"MySQL", Intermediate},
}

var projects = []Project{
	{
		Title:   "Real-time captioning system",
		Summary: "Live captioning of speech with the help of a cloud speech API.",
		Tags:    []string{"Python", "PyTorch", "Whisper"},
	},
	{
		Title:   "Brain cancer detection using CNN and ViT",
		Summary: "Trained on labelled scans: the CNN covers local features while the vision transformer covers global context.",
		Tags:    []string{"Convolutional neural network", "Vision Transformers", "SVM classifier"},
	},
	{
		Title:   "Real-time oil spill detection",
		Summary: "Highlights the spilled area in SAR satellite images.",
		Tags:    []string{"SVM", "Scikit-Learn", "Streamlit"},
	},
	{
		Title:   "Plant disease prediction",
		Summary: "Identifies leaf diseases with a tuned ensemble.",
		Tags:    []string{"Gradient boosting", "CNN", "SVM"},
	},
}

var experiences = []Experience{
	{
		Title:   "ML Intern",
		Company: "Fantasy Solution",
		Period:  "2025",
		Bullets: []string{
			"Learnt to serve ML pipelines",
			"Reduced inference time by 40%",
			"Tuned model performance",
		},
	},
	{
		Title:   "ML Engineer Intern",
		Company: "Code Alpha",
		Period:  "2025",
		Bullets: []string{
			"Delivered multiple volume-based tasks",
			"Credit scoring",
			"Heart disease prediction",
		},
	},
}

// contacts always has five rows, in this order.
var contacts = [5]ContactMethod{
	{Method: "Email", Details: "jane.doe@example.com", Href: "mailto:jane.doe@example.com"},
	{Method: "Phone", Details: "+1 555 0100", Href: "tel:+15550100"},
	{Method: "LinkedIn", Details: "https://www.linkedin.com/in/janedoe", Href: "https://www.linkedin.com/in/janedoe"},
	{Method: "Github", Details: "https://github.com/janedoe", Href: "https://github.com/janedoe"},
	{Method: "Response Time", Details: "Within 24 hours"},
}

var about = []Section{
	{
		Heading: "My Journey",
		Body:    "I'm an intern fascinated by **machine learning**. With a Bachelor's in Computer Science under way, I've led real-time projects and internships to deliver innovative solutions.",
	},
	{
		Heading: "Philosophy",
		Body:    "I believe in writing clean, efficient code and building solutions that make a real impact. My approach combines technical excellence with *user-centric* design thinking.",
	},
}

var schooling = []Education{
	{
		School: "State Engineering College",
		Degree: "B.E. Computer Science and Engineering",
		Period: "2022-2026",
		Focus:  "Specialization in Machine Learning & Data Analysis",
	},
}

var stats = []Stat{
	{Value: "Fresher", Label: "Years Experience"},
	{Value: "5+", Label: "Projects Completed"},
}

var interests = []string{"AI Research", "ML presentations", "Avid reader", "Cooking", "Tutoring"}
