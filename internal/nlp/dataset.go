package nlp

// Subject IT课程条目：主题、推荐资源与常见问答
type Subject struct {
	Code      string
	Name      string
	Topics    []string
	Resources []string
	FAQ       map[string]string
}

// Subjects 按课程代码升序排列，保证扫描顺序稳定
var Subjects = []Subject{
	{
		Code: "IT01",
		Name: "Programming Fundamentals",
		Topics: []string{
			"Variables and Data Types",
			"Control Structures",
			"Functions and Methods",
			"Object-Oriented Programming",
			"Basic Algorithms",
		},
		Resources: []string{
			"Python Documentation",
			"Java Tutorial for Beginners",
			"C++ Reference Guide",
		},
		FAQ: map[string]string{
			"what is a variable": "A variable is a container for storing data values. Think of it like a labeled box where you can store different types of information.",
			"explain loops":      "Loops are control structures that repeat a block of code. Common types are for loops (iterate over a sequence) and while loops (continue while a condition is true).",
			"what is oop":        "Object-Oriented Programming (OOP) is a programming paradigm based on 'objects' containing data and code. The main concepts are classes, objects, inheritance, and polymorphism.",
		},
	},
	{
		Code: "IT02",
		Name: "Database Management",
		Topics: []string{
			"SQL Fundamentals",
			"Database Design",
			"Normalization",
			"Query Optimization",
			"Database Security",
		},
		Resources: []string{
			"MySQL Documentation",
			"PostgreSQL Tutorials",
			"Database Design Best Practices",
		},
		FAQ: map[string]string{
			"what is sql":           "SQL (Structured Query Language) is a standard language for managing and manipulating relational databases.",
			"explain joins":         "Joins combine rows from two or more tables based on a related column. Common types are INNER JOIN, LEFT JOIN, RIGHT JOIN, and FULL JOIN.",
			"what is normalization": "Normalization is the process of organizing data to reduce redundancy and improve data integrity through a series of normal forms.",
		},
	},
	{
		Code: "IT03",
		Name: "Web Development",
		Topics: []string{
			"HTML5 & CSS3",
			"JavaScript",
			"Frontend Frameworks",
			"Backend Development",
			"RESTful APIs",
		},
		Resources: []string{
			"MDN Web Docs",
			"W3Schools Tutorials",
			"React Documentation",
		},
		FAQ: map[string]string{
			"what is html": "HTML (HyperText Markup Language) is the standard markup language for creating web pages and web applications.",
			"explain css":  "CSS (Cascading Style Sheets) is a style sheet language used for describing the presentation of a document written in HTML.",
			"what is api":  "API (Application Programming Interface) allows different software applications to communicate with each other.",
		},
	},
	{
		Code: "IT04",
		Name: "Cybersecurity",
		Topics: []string{
			"Network Security",
			"Cryptography",
			"Security Protocols",
			"Ethical Hacking",
			"Security Auditing",
		},
		Resources: []string{
			"OWASP Guidelines",
			"Cybersecurity Best Practices",
			"Network Security Fundamentals",
		},
		FAQ: map[string]string{
			"what is encryption":    "Encryption is the process of converting information into a code to prevent unauthorized access.",
			"explain firewall":      "A firewall is a network security device that monitors and filters incoming and outgoing network traffic.",
			"what is vulnerability": "A vulnerability is a weakness in a system that could be exploited by threats to gain unauthorized access.",
		},
	},
	{
		Code: "IT05",
		Name: "Cloud Computing",
		Topics: []string{
			"Cloud Services",
			"Virtualization",
			"Cloud Security",
			"Deployment Models",
			"Cloud Platforms",
		},
		Resources: []string{
			"AWS Documentation",
			"Azure Learning Path",
			"Google Cloud Guides",
		},
		FAQ: map[string]string{
			"what is cloud":   "Cloud computing is the delivery of computing services over the internet, including servers, storage, databases, and software.",
			"explain saas":    "SaaS (Software as a Service) is a software distribution model where applications are hosted by a provider and made available to customers over the internet.",
			"what is scaling": "Scaling is the ability to handle growing amounts of work by adding resources to the system.",
		},
	},
	{
		Code: "IT06",
		Name: "Artificial Intelligence",
		Topics: []string{
			"Machine Learning",
			"Neural Networks",
			"Natural Language Processing",
			"Computer Vision",
			"AI Ethics",
		},
		Resources: []string{
			"TensorFlow Documentation",
			"PyTorch Tutorials",
			"AI Ethics Guidelines",
		},
		FAQ: map[string]string{
			"what is ml":             "Machine Learning is a subset of AI that enables systems to learn and improve from experience without being explicitly programmed.",
			"explain neural network": "A neural network is a computing system inspired by biological neural networks, designed to recognize patterns in data.",
			"what is nlp":            "Natural Language Processing (NLP) is a branch of AI that helps computers understand, interpret, and manipulate human language.",
		},
	},
}

// SubjectByCode 按课程代码查询，未找到返回 nil
func SubjectByCode(code string) *Subject {
	for i := range Subjects {
		if Subjects[i].Code == code {
			return &Subjects[i]
		}
	}
	return nil
}

// StudyTips 分领域的学习建议
var StudyTips = map[string][]string{
	"general": {
		"Break your study sessions into 25-minute chunks with 5-minute breaks",
		"Find a quiet, well-lit place to study",
		"Stay hydrated and take regular breaks",
		"Review your notes within 24 hours of taking them",
		"Teach the material to someone else to better understand it",
	},
	"programming": {
		"Practice coding every day, even if just for 30 minutes",
		"Work on real projects to apply what you learn",
		"Use version control (like Git) for your code",
		"Read and understand others' code",
		"Debug systematically using print statements or a debugger",
	},
	"database": {
		"Practice writing SQL queries regularly",
		"Design databases starting with requirements",
		"Learn to read and create ERD diagrams",
		"Practice database normalization",
		"Use sample databases for learning",
	},
	"web_development": {
		"Build responsive designs from the start",
		"Test your websites across different browsers",
		"Learn to use browser developer tools",
		"Keep up with web standards and best practices",
		"Practice both frontend and backend development",
	},
}

var GreetingInputs = []string{"hi", "hello", "hey", "greetings", "hi there", "hello there", "hey there"}

var MotivationResponses = []string{
	"Remember, every expert was once a beginner. Keep going!",
	"Stay positive and keep pushing forward—you can do it!",
	"Learning is a journey. Celebrate your progress!",
	"Don't give up. Every step you take brings you closer to your goal.",
}

// GreetingMenu 欢迎语兼未知输入的兜底回复
const GreetingMenu = "Hello! I'm Naira, your study assistant. How can I help you today? You can ask me about:\n" +
	"• Study techniques\n" +
	"• Time management\n" +
	"• Exam preparation\n" +
	"• Setting study goals"
