package nlp

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// rule 关键词规则：谓词命中即返回对应回复
type rule struct {
	match   func(msg string) bool
	respond func(msg string) string
}

func containsAny(msg string, keys ...string) bool {
	for _, key := range keys {
		if strings.Contains(msg, key) {
			return true
		}
	}
	return false
}

func static(reply string) func(string) string {
	return func(string) string { return reply }
}

// KeywordBot 无需登录的规则级联，首条命中即返回
type KeywordBot struct {
	rules []rule
}

func NewKeywordBot() *KeywordBot {
	bot := &KeywordBot{}
	bot.rules = []rule{
		// 寒暄
		{
			match:   func(m string) bool { return containsAny(m, "how are you", "how's it going") },
			respond: static("I'm just a bot, but I'm here and ready to help you with your studies. How can I assist you today?"),
		},
		{
			match:   func(m string) bool { return containsAny(m, "who are you", "what is your name") },
			respond: static("I'm Naira, your educational assistant chatbot. I'm here to help you with IT topics, study tips, and productivity."),
		},
		{
			match:   func(m string) bool { return containsAny(m, "what can you do", "what do you do") },
			respond: static("I can answer questions about IT subjects, provide study tips, help with motivation, recommend resources, and assist with productivity. Please ask me anything related to your studies."),
		},
		{
			match:   func(m string) bool { return strings.Contains(m, "joke") },
			respond: static("Why do programmers prefer dark mode? Because light attracts bugs."),
		},
		{
			match:   func(m string) bool { return strings.Contains(m, "weather") },
			respond: static("I'm sorry, I don't have weather information. You can check a weather website or app for the latest updates."),
		},
		{
			match:   func(m string) bool { return strings.Contains(m, "good morning") },
			respond: static("Good morning! I hope you have a productive and positive day. How can I help you today?"),
		},
		{
			match:   func(m string) bool { return strings.Contains(m, "good night") },
			respond: static("Good night! Rest well and recharge for tomorrow. If you need any study tips before bed, just ask."),
		},
		{
			match:   func(m string) bool { return containsAny(m, "bye", "goodbye", "see you") },
			respond: static("Goodbye! If you need help again, just come back and chat with me. Have a great day!"),
		},
		// 问候
		{
			match:   func(m string) bool { return containsAny(m, GreetingInputs...) },
			respond: static(GreetingMenu),
		},
		// 学习建议
		{
			match:   func(m string) bool { return containsAny(m, "study tips", "how to study") },
			respond: studyTips,
		},
		// 时间管理
		{
			match:   func(m string) bool { return containsAny(m, "time management", "manage my time", "productivity") },
			respond: static("Here are some time management tips: Use a planner or digital calendar to organize your tasks, prioritize important assignments first, break large tasks into smaller steps, set specific goals for each study session, and avoid multitasking—focus on one thing at a time."),
		},
		// 备考
		{
			match:   func(m string) bool { return containsAny(m, "exam", "test", "prepare for") },
			respond: static("Exam preparation tips: Start studying early and review regularly, practice with past exam papers, teach concepts to a friend or yourself, take care of your health—sleep and eat well, and stay calm and confident during the exam."),
		},
		// 作业与项目
		{
			match:   func(m string) bool { return containsAny(m, "assignment", "project", "homework") },
			respond: static("For assignments and projects: Read the instructions carefully, break the work into smaller tasks, set deadlines for each part, ask your instructor or classmates if you're stuck, and review your work before submitting."),
		},
		// 激励
		{
			match: func(m string) bool { return containsAny(m, "motivate", "encourage", "inspire") },
			respond: func(string) string {
				return MotivationResponses[rand.Intn(len(MotivationResponses))]
			},
		},
		// 资源推荐
		{
			match:   func(m string) bool { return containsAny(m, "resource", "recommend", "where can i learn") },
			respond: static("I can recommend resources for IT subjects. Please specify the topic or subject code, for example, IT01 for Programming Fundamentals."),
		},
		// 致谢
		{
			match:   func(m string) bool { return containsAny(m, "thank", "thanks", "appreciate") },
			respond: static("You're welcome! If you have more questions or need help, just ask."),
		},
		// 求助
		{
			match:   func(m string) bool { return containsAny(m, "help", "can you help", "assist") },
			respond: static("Of course! I can help you with information about IT subjects (codes IT01-IT06), study tips for different fields, explanations of technical concepts, resource recommendations, and motivation or productivity advice. Just ask your question or tell me what you need."),
		},
		// 课程代码
		{
			match:   func(m string) bool { return matchSubjectCode(m) != nil },
			respond: subjectOverview,
		},
		// 课程常见问答
		{
			match:   func(m string) bool { s, _, _ := matchFAQ(m); return s != nil },
			respond: faqAnswer,
		},
		// 过短输入
		{
			match:   func(m string) bool { return len(strings.Fields(m)) <= 2 },
			respond: static("Could you please clarify your question or provide more details so I can assist you better?"),
		},
	}
	return bot
}

// Respond 级联匹配，全部未命中时返回欢迎菜单
func (b *KeywordBot) Respond(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, r := range b.rules {
		if r.match(msg) {
			return r.respond(msg)
		}
	}
	return GreetingMenu
}

func studyTips(msg string) string {
	switch {
	case strings.Contains(msg, "programming"):
		return "Here are some programming study tips: " + strings.Join(StudyTips["programming"], ", ") + "."
	case strings.Contains(msg, "database"):
		return "Here are some database study tips: " + strings.Join(StudyTips["database"], ", ") + "."
	case strings.Contains(msg, "web"):
		return "Here are some web development study tips: " + strings.Join(StudyTips["web_development"], ", ") + "."
	default:
		return "Here are some general study tips: " + strings.Join(StudyTips["general"], ", ") + "."
	}
}

func matchSubjectCode(msg string) *Subject {
	for i := range Subjects {
		if strings.Contains(msg, strings.ToLower(Subjects[i].Code)) {
			return &Subjects[i]
		}
	}
	return nil
}

func subjectOverview(msg string) string {
	subject := matchSubjectCode(msg)
	if subject == nil {
		return GreetingMenu
	}
	return fmt.Sprintf("Subject: %s (%s). Topics covered: %s. Available resources: %s. Ask me specific questions about any topic in %s.",
		subject.Name, subject.Code,
		strings.Join(subject.Topics, ", "),
		strings.Join(subject.Resources, ", "),
		subject.Name)
}

// matchFAQ 匹配课程常见问答：整句命中，或问题中长度>=4的单词命中。
// 按问题字典序扫描，保证同课程多问题命中时结果稳定
func matchFAQ(msg string) (*Subject, string, string) {
	for i := range Subjects {
		subject := &Subjects[i]
		questions := make([]string, 0, len(subject.FAQ))
		for question := range subject.FAQ {
			questions = append(questions, question)
		}
		sort.Strings(questions)
		for _, question := range questions {
			if strings.Contains(msg, question) {
				return subject, question, subject.FAQ[question]
			}
			for _, word := range strings.Fields(question) {
				if len(word) >= 4 && strings.Contains(msg, word) {
					return subject, question, subject.FAQ[question]
				}
			}
		}
	}
	return nil, "", ""
}

func faqAnswer(msg string) string {
	subject, _, answer := matchFAQ(msg)
	if subject == nil {
		return GreetingMenu
	}
	return fmt.Sprintf("%s This is related to %s (%s). Would you like to know more about this subject?",
		answer, subject.Name, subject.Code)
}
