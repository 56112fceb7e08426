package fallback

import "github.com/thrivelog/thrivelog/internal/model"

var insights = map[string]model.Insights{
	"INTJ": {
		Careers:       []string{"Strategic Consultant", "Research Scientist", "Systems Architect"},
		Habits:        []string{"Strategic Planning", "Knowledge Deep-Dive", "Independent Reflection"},
		MotivationTip: "Focus on your long-term vision and use your strategic thinking to achieve your goals systematically.",
		Strengths:     []string{"Strategic thinking", "Analytical skills", "Independence"},
		Challenges:    []string{"Social interactions", "Flexibility", "Expressing emotions"},
		LearningStyle: "Learn best through independent study and understanding complex systems.",
	},
	"INTP": {
		Careers:       []string{"Software Engineer", "Philosopher/Academic", "Data Scientist"},
		Habits:        []string{"Problem-Solving Time", "Knowledge Exploration", "Creative Thinking Sessions"},
		MotivationTip: "Use your analytical mind and curiosity to solve complex problems and explore new ideas.",
		Strengths:     []string{"Analytical thinking", "Curiosity", "Independence"},
		Challenges:    []string{"Social interaction", "Practical application", "Emotional expression"},
		LearningStyle: "Learn best through independent study and understanding theoretical concepts.",
	},
	"ENTJ": {
		Careers:       []string{"Executive/CEO", "Management Consultant", "Entrepreneur"},
		Habits:        []string{"Leadership Development", "Goal Achievement Tracking", "Strategic Networking"},
		MotivationTip: "Use your leadership abilities and strategic thinking to achieve ambitious goals and inspire others.",
		Strengths:     []string{"Leadership", "Strategic thinking", "Efficiency"},
		Challenges:    []string{"Patience", "Empathy", "Flexibility"},
		LearningStyle: "Learn best through strategic planning and understanding systems and structures.",
	},
	"ENTP": {
		Careers:       []string{"Innovation Consultant", "Entrepreneur/Startup Founder", "Product Manager"},
		Habits:        []string{"Creative Problem Solving", "Knowledge Synthesis", "Adaptive Learning"},
		MotivationTip: "Embrace your natural curiosity and use it to explore new possibilities. Your adaptability is your superpower.",
		Strengths:     []string{"Innovative thinking", "Quick problem solving", "Adaptability"},
		Challenges:    []string{"Following through on projects", "Maintaining focus", "Overthinking"},
		LearningStyle: "Learn best through hands-on experimentation and connecting ideas from different fields.",
	},
	"INFJ": {
		Careers:       []string{"Counselor/Therapist", "Writer/Author", "Humanitarian Worker"},
		Habits:        []string{"Creative Expression", "Deep Listening", "Personal Growth Reflection"},
		MotivationTip: "Use your empathy and insight to help others while staying true to your values and vision.",
		Strengths:     []string{"Empathy", "Insight", "Creativity"},
		Challenges:    []string{"Setting boundaries", "Practical details", "Self-care"},
		LearningStyle: "Learn best through meaningful connections and understanding underlying principles.",
	},
	"INFP": {
		Careers:       []string{"Creative Professional", "Social Worker", "Teacher/Educator"},
		Habits:        []string{"Creative Writing", "Values-Based Decision Making", "Empathy Practice"},
		MotivationTip: "Stay true to your values and use your creativity to make a positive impact on the world.",
		Strengths:     []string{"Creativity", "Empathy", "Authenticity"},
		Challenges:    []string{"Practical planning", "Setting boundaries", "Self-doubt"},
		LearningStyle: "Learn best through creative expression and personal connection to the material.",
	},
	"ENFJ": {
		Careers:       []string{"Human Resources Manager", "Teacher/Professor", "Non-profit Director"},
		Habits:        []string{"Relationship Building", "Leadership Development", "Community Involvement"},
		MotivationTip: "Use your natural ability to inspire and motivate others to create positive change.",
		Strengths:     []string{"Leadership", "Empathy", "Communication"},
		Challenges:    []string{"Taking care of yourself", "Dealing with criticism", "Overcommitment"},
		LearningStyle: "Learn best through teaching others and collaborative group activities.",
	},
	"ENFP": {
		Careers:       []string{"Creative Director", "Marketing Specialist", "Life Coach"},
		Habits:        []string{"Creative Exploration", "Social Connection", "Passion Pursuit"},
		MotivationTip: "Follow your passions and use your enthusiasm to inspire others to pursue their dreams.",
		Strengths:     []string{"Creativity", "Enthusiasm", "Adaptability"},
		Challenges:    []string{"Focus and follow-through", "Practical details", "Overcommitment"},
		LearningStyle: "Learn best through exploration and connecting new ideas to personal interests.",
	},
	"ISTJ": {
		Careers:       []string{"Project Manager", "Accountant/Financial Analyst", "Quality Assurance Specialist"},
		Habits:        []string{"Routine Establishment", "Detail Management", "Reliability Building"},
		MotivationTip: "Use your reliability and attention to detail to build trust and achieve consistent results.",
		Strengths:     []string{"Reliability", "Organization", "Attention to detail"},
		Challenges:    []string{"Flexibility", "Expressing emotions", "Change management"},
		LearningStyle: "Learn best through structured, step-by-step approaches with practical applications.",
	},
	"ISFJ": {
		Careers:       []string{"Healthcare Professional", "Administrative Assistant", "Customer Service Manager"},
		Habits:        []string{"Service to Others", "Practical Skill Development", "Memory and Tradition"},
		MotivationTip: "Use your caring nature and practical skills to help others and create stability.",
		Strengths:     []string{"Caring", "Practical skills", "Loyalty"},
		Challenges:    []string{"Self-care", "Change", "Conflict resolution"},
		LearningStyle: "Learn best through hands-on experience and practical, real-world applications.",
	},
	"ESTJ": {
		Careers:       []string{"Business Manager", "Military Officer", "Operations Manager"},
		Habits:        []string{"Goal Setting and Achievement", "Leadership Practice", "Efficiency Optimization"},
		MotivationTip: "Use your organizational skills and leadership abilities to create efficient, successful systems.",
		Strengths:     []string{"Organization", "Leadership", "Efficiency"},
		Challenges:    []string{"Flexibility", "Empathy", "Patience"},
		LearningStyle: "Learn best through structured, practical approaches with clear goals and outcomes.",
	},
	"ESFJ": {
		Careers:       []string{"Nurse/Healthcare Worker", "Event Planner", "Sales Representative"},
		Habits:        []string{"Community Building", "Caregiving Practice", "Tradition Preservation"},
		MotivationTip: "Use your people skills and caring nature to build strong communities and help others.",
		Strengths:     []string{"People skills", "Caring", "Organization"},
		Challenges:    []string{"Conflict", "Change", "Self-care"},
		LearningStyle: "Learn best through social interaction and practical, hands-on experience.",
	},
	"ISTP": {
		Careers:       []string{"Mechanic/Technician", "Emergency Responder", "Pilot/Aviator"},
		Habits:        []string{"Hands-on Learning", "Problem Solving", "Adaptability Practice"},
		MotivationTip: "Use your practical skills and problem-solving abilities to tackle real-world challenges.",
		Strengths:     []string{"Practical skills", "Problem solving", "Adaptability"},
		Challenges:    []string{"Long-term planning", "Emotional expression", "Commitment"},
		LearningStyle: "Learn best through hands-on experience and solving practical problems.",
	},
	"ISFP": {
		Careers:       []string{"Artist/Designer", "Interior Designer", "Massage Therapist"},
		Habits:        []string{"Creative Expression", "Sensory Awareness", "Harmony Maintenance"},
		MotivationTip: "Use your creativity and sensitivity to create beauty and harmony in the world.",
		Strengths:     []string{"Creativity", "Sensitivity", "Harmony"},
		Challenges:    []string{"Planning", "Conflict", "Self-promotion"},
		LearningStyle: "Learn best through creative expression and sensory, hands-on experiences.",
	},
	"ESTP": {
		Careers:       []string{"Entrepreneur", "Sales Professional", "Athlete/Sports Professional"},
		Habits:        []string{"Action-Oriented Learning", "Risk Assessment", "Social Networking"},
		MotivationTip: "Use your action-oriented nature and people skills to seize opportunities and achieve success.",
		Strengths:     []string{"Action-oriented", "People skills", "Risk-taking"},
		Challenges:    []string{"Planning", "Patience", "Follow-through"},
		LearningStyle: "Learn best through action and hands-on experience in real-world situations.",
	},
	"ESFP": {
		Careers:       []string{"Entertainment Professional", "Customer Service Representative", "Tour Guide"},
		Habits:        []string{"Social Connection", "Present Moment Awareness", "Helping Others"},
		MotivationTip: "Use your enthusiasm and people skills to bring joy and help others enjoy life.",
		Strengths:     []string{"Enthusiasm", "People skills", "Practicality"},
		Challenges:    []string{"Planning", "Focus", "Conflict"},
		LearningStyle: "Learn best through social interaction and hands-on, practical experience.",
	},
}

var defaultInsights = model.Insights{
	Careers:       []string{"Career Counselor", "Human Resources", "Personal Development Coach"},
	Habits:        []string{"Daily reflection", "Goal setting", "Regular self-assessment"},
	MotivationTip: "Focus on your unique strengths and use them to overcome challenges.",
	Strengths:     []string{"Self-awareness", "Empathy", "Growth mindset"},
	Challenges:    []string{"Overthinking", "Perfectionism", "Self-doubt"},
	LearningStyle: "Learn best through hands-on experience and personal reflection.",
}
