package fallback

import "github.com/thrivelog/thrivelog/internal/model"

var recommendations = map[string]model.Recommendations{
	"INTJ": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Strategic Planning Sessions",
				Description: "Dedicate 30 minutes daily to long-term planning and goal setting, which aligns with your natural strategic thinking.",
				Category:    model.HabitCategoryProductivity,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "You do your best work when today's actions serve a long-range plan.",
			},
			{
				Title:       "Knowledge Deep-Dive",
				Description: "Spend time each day learning about a complex topic that interests you, leveraging your analytical nature.",
				Category:    model.HabitCategoryLearning,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Mastering complex subjects feeds your drive for competence.",
			},
			{
				Title:       "Independent Reflection",
				Description: "Set aside quiet time for deep thinking and self-analysis, which helps you process information effectively.",
				Category:    model.HabitCategoryMindfulness,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "Solitude gives you room to refine ideas before acting on them.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Strategic Consultant",
				Description:     "Your analytical mind and ability to see big-picture strategies make you excellent at helping organizations plan for the future.",
				Skills:          []string{"Strategic Planning", "Analysis", "Systems Thinking", "Communication"},
				GrowthPotential: "High",
				WorkStyle:       "Independent and analytical",
				Reasoning:       "Long-range planning is where your vision creates the most value.",
			},
			{
				Title:           "Research Scientist",
				Description:     "Your love for complex problems and independent work style is perfect for scientific research and discovery.",
				Skills:          []string{"Research Design", "Critical Thinking", "Data Analysis", "Technical Writing"},
				GrowthPotential: "High",
				WorkStyle:       "Focused and autonomous",
				Reasoning:       "Research rewards the depth and rigor you bring to hard problems.",
			},
			{
				Title:           "Systems Architect",
				Description:     "Your ability to design efficient, logical systems aligns perfectly with creating complex technical architectures.",
				Skills:          []string{"System Design", "Technical Leadership", "Problem Solving", "Documentation"},
				GrowthPotential: "Very High",
				WorkStyle:       "Structured and independent",
				Reasoning:       "Designing coherent systems matches your preference for logic and order.",
			},
		},
	},
	"INTP": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Problem-Solving Time",
				Description: "Dedicate time each day to solving complex puzzles or theoretical problems that engage your logical mind.",
				Category:    model.HabitCategoryLearning,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Regular puzzles keep your analytical skills sharp and satisfying.",
			},
			{
				Title:       "Knowledge Exploration",
				Description: "Follow your curiosity by researching new topics daily, which satisfies your thirst for understanding.",
				Category:    model.HabitCategoryLearning,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Curiosity is your main source of energy and motivation.",
			},
			{
				Title:       "Creative Thinking Sessions",
				Description: "Allow yourself unstructured time to explore ideas and theories without pressure.",
				Category:    model.HabitCategoryMindfulness,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Unstructured time lets your best ideas surface on their own.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Software Engineer",
				Description:     "Your logical thinking and love for solving complex problems makes you excellent at programming and system design.",
				Skills:          []string{"Programming", "Algorithms", "Debugging", "System Design"},
				GrowthPotential: "Very High",
				WorkStyle:       "Independent and focused",
				Reasoning:       "Programming turns your love of logic into working systems.",
			},
			{
				Title:           "Philosopher/Academic",
				Description:     "Your deep thinking and love for theoretical exploration is perfect for academic research and philosophical inquiry.",
				Skills:          []string{"Critical Thinking", "Writing", "Research", "Argumentation"},
				GrowthPotential: "Medium",
				WorkStyle:       "Reflective and self-directed",
				Reasoning:       "Academia gives you time to explore ideas in depth.",
			},
			{
				Title:           "Data Scientist",
				Description:     "Your analytical skills and ability to find patterns in complex data sets is ideal for data analysis and machine learning.",
				Skills:          []string{"Statistics", "Machine Learning", "Programming", "Data Visualization"},
				GrowthPotential: "High",
				WorkStyle:       "Analytical and flexible",
				Reasoning:       "Finding patterns in data suits your investigative mind.",
			},
		},
	},
	"ENTJ": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Leadership Development",
				Description: "Practice decision-making and leadership skills daily through planning and organizing activities.",
				Category:    model.HabitCategoryProductivity,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Deliberate practice sharpens the leadership you already gravitate to.",
			},
			{
				Title:       "Goal Achievement Tracking",
				Description: "Set ambitious goals and track your progress systematically, which fuels your drive for success.",
				Category:    model.HabitCategoryProductivity,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "Visible progress keeps your ambition focused and measurable.",
			},
			{
				Title:       "Strategic Networking",
				Description: "Build and maintain professional relationships that can help you achieve your long-term objectives.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "A strong network multiplies the impact of your plans.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Executive/CEO",
				Description:     "Your natural leadership abilities and strategic thinking make you excellent at running organizations and companies.",
				Skills:          []string{"Leadership", "Strategy", "Decision Making", "Negotiation"},
				GrowthPotential: "Very High",
				WorkStyle:       "Decisive and goal-driven",
				Reasoning:       "Running organizations uses your strategic and commanding strengths.",
			},
			{
				Title:           "Management Consultant",
				Description:     "Your ability to analyze problems and implement solutions is perfect for helping businesses improve.",
				Skills:          []string{"Problem Solving", "Business Analysis", "Presentation", "Project Management"},
				GrowthPotential: "High",
				WorkStyle:       "Fast-paced and results-oriented",
				Reasoning:       "Consulting rewards quick analysis followed by decisive action.",
			},
			{
				Title:           "Entrepreneur",
				Description:     "Your drive, vision, and ability to execute make you well-suited for starting and growing your own business.",
				Skills:          []string{"Vision", "Execution", "Fundraising", "Team Building"},
				GrowthPotential: "Very High",
				WorkStyle:       "Autonomous and ambitious",
				Reasoning:       "Building a company lets your drive set the pace.",
			},
		},
	},
	"ENTP": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Creative Problem Solving",
				Description: "Challenge yourself with new problems daily to keep your innovative mind engaged and stimulated.",
				Category:    model.HabitCategoryProductivity,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Your innovative thinking thrives on solving complex problems and finding creative solutions.",
			},
			{
				Title:       "Knowledge Synthesis",
				Description: "Connect ideas from different fields to create new insights and solutions.",
				Category:    model.HabitCategoryLearning,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "Your ability to see connections between different domains is a key strength.",
			},
			{
				Title:       "Adaptive Learning",
				Description: "Embrace change and learn new skills regularly to satisfy your curiosity and adaptability.",
				Category:    model.HabitCategoryLearning,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Your adaptability and curiosity drive you to constantly learn and evolve.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Innovation Consultant",
				Description:     "Your ability to see possibilities and generate creative solutions makes you excellent at driving innovation.",
				Skills:          []string{"Strategic Thinking", "Problem Solving", "Communication", "Innovation"},
				GrowthPotential: "High",
				WorkStyle:       "Dynamic and collaborative",
				Reasoning:       "Your natural ability to see possibilities and generate creative solutions aligns perfectly with innovation consulting.",
			},
			{
				Title:           "Entrepreneur/Startup Founder",
				Description:     "Your adaptability and ability to pivot quickly are perfect for the dynamic startup environment.",
				Skills:          []string{"Leadership", "Risk Management", "Adaptability", "Vision"},
				GrowthPotential: "Very High",
				WorkStyle:       "Autonomous and fast-paced",
				Reasoning:       "Your adaptability and ability to think on your feet make you ideal for the startup world.",
			},
			{
				Title:           "Product Manager",
				Description:     "Your strategic thinking and ability to understand multiple perspectives help you create successful products.",
				Skills:          []string{"Product Strategy", "User Research", "Cross-functional Leadership", "Analytics"},
				GrowthPotential: "High",
				WorkStyle:       "Collaborative and strategic",
				Reasoning:       "Your ability to understand multiple perspectives and think strategically is perfect for product management.",
			},
		},
	},
	"INFJ": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Creative Expression",
				Description: "Dedicate time to writing, art, or other creative pursuits that allow you to express your inner vision.",
				Category:    model.HabitCategoryMindfulness,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "Creative work gives shape to your rich inner world.",
			},
			{
				Title:       "Deep Listening Practice",
				Description: "Practice active listening and empathy to strengthen your natural ability to understand others.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Listening well deepens the connections you value most.",
			},
			{
				Title:       "Personal Growth Reflection",
				Description: "Regularly reflect on your values and how you can make a positive impact on the world.",
				Category:    model.HabitCategoryMindfulness,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        1,
				Reasoning:   "Reflection keeps your actions aligned with your values.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Counselor/Therapist",
				Description:     "Your empathy and insight into human nature make you excellent at helping others heal and grow.",
				Skills:          []string{"Active Listening", "Empathy", "Assessment", "Communication"},
				GrowthPotential: "High",
				WorkStyle:       "Supportive and one-on-one",
				Reasoning:       "Helping people grow draws directly on your insight into others.",
			},
			{
				Title:           "Writer/Author",
				Description:     "Your ability to understand complex human emotions and express them beautifully is perfect for creative writing.",
				Skills:          []string{"Writing", "Storytelling", "Research", "Editing"},
				GrowthPotential: "Medium",
				WorkStyle:       "Independent and reflective",
				Reasoning:       "Writing lets you share your vision at your own pace.",
			},
			{
				Title:           "Humanitarian Worker",
				Description:     "Your desire to make a difference and help others aligns perfectly with humanitarian and social work.",
				Skills:          []string{"Advocacy", "Program Coordination", "Cultural Awareness", "Empathy"},
				GrowthPotential: "Medium",
				WorkStyle:       "Mission-driven and collaborative",
				Reasoning:       "Purposeful work sustains your motivation over the long term.",
			},
		},
	},
	"INFP": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Creative Writing",
				Description: "Express your thoughts and feelings through writing, which helps you process your rich inner world.",
				Category:    model.HabitCategoryMindfulness,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Writing turns your feelings into clarity.",
			},
			{
				Title:       "Values-Based Decision Making",
				Description: "Make decisions based on your core values and what feels authentic to you.",
				Category:    model.HabitCategoryMindfulness,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Checking choices against your values keeps you feeling authentic.",
			},
			{
				Title:       "Empathy Practice",
				Description: "Connect with others on a deep level and practice understanding different perspectives.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Deep connection is one of your greatest sources of meaning.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Creative Professional",
				Description:     "Your imagination and ability to express emotions make you excellent in creative fields like writing, art, or design.",
				Skills:          []string{"Creativity", "Visual Design", "Writing", "Storytelling"},
				GrowthPotential: "Medium",
				WorkStyle:       "Flexible and expressive",
				Reasoning:       "Creative fields reward the imagination you bring naturally.",
			},
			{
				Title:           "Social Worker",
				Description:     "Your empathy and desire to help others make you perfect for supporting people in need.",
				Skills:          []string{"Empathy", "Case Management", "Advocacy", "Communication"},
				GrowthPotential: "Medium",
				WorkStyle:       "Supportive and values-driven",
				Reasoning:       "Supporting people in need aligns with your core values.",
			},
			{
				Title:           "Teacher/Educator",
				Description:     "Your patience and ability to inspire others make you excellent at teaching and mentoring.",
				Skills:          []string{"Instruction", "Mentoring", "Patience", "Curriculum Design"},
				GrowthPotential: "Medium",
				WorkStyle:       "Nurturing and creative",
				Reasoning:       "Teaching lets you inspire growth in others.",
			},
		},
	},
	"ENFJ": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Relationship Building",
				Description: "Invest time in building and maintaining meaningful relationships with others.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "Strong relationships are where you draw energy and purpose.",
			},
			{
				Title:       "Leadership Development",
				Description: "Practice inspiring and motivating others to achieve their goals.",
				Category:    model.HabitCategoryProductivity,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Leading others is a natural extension of your care for them.",
			},
			{
				Title:       "Community Involvement",
				Description: "Get involved in community activities that allow you to make a positive impact.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyMonthly,
				Goal:        2,
				Reasoning:   "Community work turns your empathy into visible impact.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Human Resources Manager",
				Description:     "Your ability to understand and motivate people makes you excellent at managing teams and organizational culture.",
				Skills:          []string{"People Management", "Conflict Resolution", "Communication", "Coaching"},
				GrowthPotential: "High",
				WorkStyle:       "Collaborative and people-focused",
				Reasoning:       "Shaping culture uses your talent for understanding people.",
			},
			{
				Title:           "Teacher/Professor",
				Description:     "Your passion for helping others learn and grow is perfect for education.",
				Skills:          []string{"Instruction", "Public Speaking", "Mentoring", "Curriculum Design"},
				GrowthPotential: "Medium",
				WorkStyle:       "Engaging and structured",
				Reasoning:       "Education lets you guide others toward their potential.",
			},
			{
				Title:           "Non-profit Director",
				Description:     "Your desire to make a difference and ability to inspire others is ideal for leading charitable organizations.",
				Skills:          []string{"Leadership", "Fundraising", "Strategic Planning", "Public Speaking"},
				GrowthPotential: "High",
				WorkStyle:       "Mission-driven and inspiring",
				Reasoning:       "Leading a cause combines your vision with your drive to help.",
			},
		},
	},
	"ENFP": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Creative Exploration",
				Description: "Allow yourself to explore new ideas and possibilities without feeling constrained.",
				Category:    model.HabitCategoryLearning,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "Exploration keeps your enthusiasm alive.",
			},
			{
				Title:       "Social Connection",
				Description: "Maintain meaningful relationships and seek out new connections that inspire you.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "People and new connections fuel your energy.",
			},
			{
				Title:       "Passion Pursuit",
				Description: "Follow your interests and passions, even if they change frequently.",
				Category:    model.HabitCategoryLearning,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Following your passions keeps motivation high.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Creative Director",
				Description:     "Your imagination and ability to inspire others make you excellent at leading creative projects.",
				Skills:          []string{"Creative Vision", "Leadership", "Brand Strategy", "Communication"},
				GrowthPotential: "High",
				WorkStyle:       "Energetic and collaborative",
				Reasoning:       "Leading creative work blends your imagination with your people skills.",
			},
			{
				Title:           "Marketing Specialist",
				Description:     "Your ability to connect with people and generate enthusiasm is perfect for marketing and communications.",
				Skills:          []string{"Storytelling", "Campaign Planning", "Social Media", "Communication"},
				GrowthPotential: "High",
				WorkStyle:       "Dynamic and creative",
				Reasoning:       "Marketing rewards your ability to generate excitement.",
			},
			{
				Title:           "Life Coach",
				Description:     "Your optimism and ability to see potential in others make you excellent at helping people achieve their dreams.",
				Skills:          []string{"Coaching", "Active Listening", "Motivation", "Goal Setting"},
				GrowthPotential: "Medium",
				WorkStyle:       "Flexible and supportive",
				Reasoning:       "Coaching lets you help others see their own potential.",
			},
		},
	},
	"ISTJ": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Routine Establishment",
				Description: "Create and maintain consistent daily routines that help you stay organized and productive.",
				Category:    model.HabitCategoryProductivity,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Reliable routines let you work at your steady best.",
			},
			{
				Title:       "Detail Management",
				Description: "Practice paying attention to details and maintaining high standards in your work.",
				Category:    model.HabitCategoryProductivity,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Care for details is one of your defining strengths.",
			},
			{
				Title:       "Reliability Building",
				Description: "Focus on being dependable and following through on your commitments.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "Following through builds the trust you value.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Project Manager",
				Description:     "Your organizational skills and attention to detail make you excellent at managing complex projects.",
				Skills:          []string{"Planning", "Scheduling", "Risk Management", "Documentation"},
				GrowthPotential: "High",
				WorkStyle:       "Structured and methodical",
				Reasoning:       "Managing projects uses your talent for order and follow-through.",
			},
			{
				Title:           "Accountant/Financial Analyst",
				Description:     "Your precision and reliability are perfect for financial and analytical roles.",
				Skills:          []string{"Accounting", "Financial Analysis", "Attention to Detail", "Compliance"},
				GrowthPotential: "High",
				WorkStyle:       "Precise and independent",
				Reasoning:       "Financial work rewards accuracy and consistency.",
			},
			{
				Title:           "Quality Assurance Specialist",
				Description:     "Your attention to detail and commitment to standards make you excellent at ensuring quality.",
				Skills:          []string{"Testing", "Process Improvement", "Attention to Detail", "Documentation"},
				GrowthPotential: "Medium",
				WorkStyle:       "Systematic and thorough",
				Reasoning:       "Upholding standards suits your conscientious nature.",
			},
		},
	},
	"ISFJ": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Service to Others",
				Description: "Find ways to help and support others in your daily life.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Helping others is one of your deepest sources of satisfaction.",
			},
			{
				Title:       "Practical Skill Development",
				Description: "Learn and practice practical skills that can help you and others.",
				Category:    model.HabitCategoryLearning,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Practical skills let you care for people in concrete ways.",
			},
			{
				Title:       "Memory and Tradition",
				Description: "Preserve important memories and traditions that are meaningful to you and your community.",
				Category:    model.HabitCategoryMindfulness,
				Frequency:   model.HabitFrequencyMonthly,
				Goal:        2,
				Reasoning:   "Traditions give you a sense of continuity and belonging.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Healthcare Professional",
				Description:     "Your caring nature and attention to detail make you excellent in healthcare roles.",
				Skills:          []string{"Patient Care", "Attention to Detail", "Empathy", "Record Keeping"},
				GrowthPotential: "High",
				WorkStyle:       "Caring and structured",
				Reasoning:       "Healthcare combines your compassion with your reliability.",
			},
			{
				Title:           "Administrative Assistant",
				Description:     "Your organizational skills and desire to help others are perfect for administrative support.",
				Skills:          []string{"Organization", "Scheduling", "Communication", "Office Software"},
				GrowthPotential: "Medium",
				WorkStyle:       "Supportive and organized",
				Reasoning:       "Keeping things running smoothly is how you help others most.",
			},
			{
				Title:           "Customer Service Manager",
				Description:     "Your patience and ability to understand others' needs make you excellent at customer service.",
				Skills:          []string{"Patience", "Problem Solving", "Team Leadership", "Communication"},
				GrowthPotential: "Medium",
				WorkStyle:       "Steady and people-oriented",
				Reasoning:       "Understanding needs and resolving them plays to your strengths.",
			},
		},
	},
	"ESTJ": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Goal Setting and Achievement",
				Description: "Set clear, achievable goals and work systematically toward them.",
				Category:    model.HabitCategoryProductivity,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "Clear goals give your drive a concrete target.",
			},
			{
				Title:       "Leadership Practice",
				Description: "Take on leadership roles and practice making decisions and organizing others.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "You thrive when you can bring order to a group.",
			},
			{
				Title:       "Efficiency Optimization",
				Description: "Look for ways to improve processes and make things more efficient.",
				Category:    model.HabitCategoryProductivity,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Improving processes satisfies your need for efficiency.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Business Manager",
				Description:     "Your organizational skills and ability to get things done make you excellent at managing businesses.",
				Skills:          []string{"Management", "Budgeting", "Decision Making", "Operations"},
				GrowthPotential: "High",
				WorkStyle:       "Structured and decisive",
				Reasoning:       "Running a business rewards your practical leadership.",
			},
			{
				Title:           "Military Officer",
				Description:     "Your leadership abilities and respect for structure are perfect for military or law enforcement roles.",
				Skills:          []string{"Leadership", "Discipline", "Logistics", "Decision Making"},
				GrowthPotential: "Medium",
				WorkStyle:       "Hierarchical and disciplined",
				Reasoning:       "Structured organizations match your respect for order.",
			},
			{
				Title:           "Operations Manager",
				Description:     "Your ability to organize and optimize processes makes you excellent at operations management.",
				Skills:          []string{"Process Optimization", "Logistics", "Team Leadership", "Analytics"},
				GrowthPotential: "High",
				WorkStyle:       "Organized and results-oriented",
				Reasoning:       "Operations is where efficiency becomes measurable results.",
			},
		},
	},
	"ESFJ": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Community Building",
				Description: "Create and maintain strong community connections and support networks.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Community gives you purpose and energy.",
			},
			{
				Title:       "Caregiving Practice",
				Description: "Find ways to care for and support others in your daily life.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Caring for others is central to who you are.",
			},
			{
				Title:       "Tradition Preservation",
				Description: "Maintain and celebrate traditions that bring people together.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyMonthly,
				Goal:        1,
				Reasoning:   "Shared traditions strengthen the bonds you value.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Nurse/Healthcare Worker",
				Description:     "Your caring nature and practical skills make you excellent in healthcare.",
				Skills:          []string{"Patient Care", "Communication", "Teamwork", "Clinical Skills"},
				GrowthPotential: "High",
				WorkStyle:       "Caring and team-oriented",
				Reasoning:       "Healthcare lets you support people in very practical ways.",
			},
			{
				Title:           "Event Planner",
				Description:     "Your organizational skills and ability to bring people together are perfect for event planning.",
				Skills:          []string{"Organization", "Vendor Management", "Budgeting", "Communication"},
				GrowthPotential: "Medium",
				WorkStyle:       "Social and organized",
				Reasoning:       "Bringing people together is something you enjoy and do well.",
			},
			{
				Title:           "Sales Representative",
				Description:     "Your people skills and ability to build relationships make you excellent at sales.",
				Skills:          []string{"Relationship Building", "Negotiation", "Communication", "Product Knowledge"},
				GrowthPotential: "High",
				WorkStyle:       "Outgoing and relationship-driven",
				Reasoning:       "Sales rewards the trust you build with people.",
			},
		},
	},
	"ISTP": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Hands-on Learning",
				Description: "Learn new skills through direct experience and practice.",
				Category:    model.HabitCategoryLearning,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "You learn fastest by doing.",
			},
			{
				Title:       "Problem Solving",
				Description: "Tackle practical problems and find efficient solutions.",
				Category:    model.HabitCategoryProductivity,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Practical problems keep your mind engaged.",
			},
			{
				Title:       "Adaptability Practice",
				Description: "Stay flexible and adapt to changing situations as they arise.",
				Category:    model.HabitCategoryMindfulness,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Adaptability lets you stay calm and effective under change.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Mechanic/Technician",
				Description:     "Your practical skills and problem-solving abilities make you excellent at technical work.",
				Skills:          []string{"Troubleshooting", "Mechanical Aptitude", "Tool Proficiency", "Diagnostics"},
				GrowthPotential: "Medium",
				WorkStyle:       "Hands-on and independent",
				Reasoning:       "Technical work rewards your practical problem solving.",
			},
			{
				Title:           "Emergency Responder",
				Description:     "Your ability to stay calm under pressure and solve problems quickly is perfect for emergency services.",
				Skills:          []string{"Crisis Response", "First Aid", "Quick Decision Making", "Teamwork"},
				GrowthPotential: "Medium",
				WorkStyle:       "Fast-paced and action-oriented",
				Reasoning:       "You stay effective when situations demand quick action.",
			},
			{
				Title:           "Pilot/Aviator",
				Description:     "Your technical skills and ability to handle complex systems make you excellent at flying.",
				Skills:          []string{"Navigation", "Systems Monitoring", "Situational Awareness", "Composure"},
				GrowthPotential: "High",
				WorkStyle:       "Precise and independent",
				Reasoning:       "Handling complex systems in real time suits your skills.",
			},
		},
	},
	"ISFP": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Creative Expression",
				Description: "Express yourself through art, music, or other creative outlets.",
				Category:    model.HabitCategoryMindfulness,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "Creative outlets let you express what words cannot.",
			},
			{
				Title:       "Sensory Awareness",
				Description: "Pay attention to your senses and appreciate beauty in your surroundings.",
				Category:    model.HabitCategoryMindfulness,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Noticing beauty grounds you in the present.",
			},
			{
				Title:       "Harmony Maintenance",
				Description: "Work to maintain peace and harmony in your relationships and environment.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Harmony in your surroundings supports your wellbeing.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Artist/Designer",
				Description:     "Your creativity and appreciation for beauty make you excellent in artistic and design fields.",
				Skills:          []string{"Visual Design", "Creativity", "Color Theory", "Craftsmanship"},
				GrowthPotential: "Medium",
				WorkStyle:       "Independent and expressive",
				Reasoning:       "Artistic work lets you share your sense of beauty.",
			},
			{
				Title:           "Interior Designer",
				Description:     "Your eye for aesthetics and ability to create harmonious spaces is perfect for interior design.",
				Skills:          []string{"Spatial Design", "Aesthetics", "Client Communication", "Project Planning"},
				GrowthPotential: "Medium",
				WorkStyle:       "Creative and hands-on",
				Reasoning:       "Designing spaces combines aesthetics with practical impact.",
			},
			{
				Title:           "Massage Therapist",
				Description:     "Your gentle nature and desire to help others feel good make you excellent at therapeutic work.",
				Skills:          []string{"Anatomy", "Therapeutic Touch", "Empathy", "Client Care"},
				GrowthPotential: "Medium",
				WorkStyle:       "Calm and one-on-one",
				Reasoning:       "Therapeutic work lets you help people in a quiet, direct way.",
			},
		},
	},
	"ESTP": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Action-Oriented Learning",
				Description: "Learn through doing and taking action rather than just reading or thinking.",
				Category:    model.HabitCategoryLearning,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "Action is how you learn and stay engaged.",
			},
			{
				Title:       "Risk Assessment",
				Description: "Practice evaluating risks and opportunities in real-time situations.",
				Category:    model.HabitCategoryProductivity,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Sharper judgment makes your boldness more effective.",
			},
			{
				Title:       "Social Networking",
				Description: "Build and maintain a wide network of contacts and relationships.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "A wide network creates the opportunities you thrive on.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Entrepreneur",
				Description:     "Your ability to spot opportunities and take action makes you excellent at starting businesses.",
				Skills:          []string{"Opportunity Spotting", "Sales", "Negotiation", "Risk Management"},
				GrowthPotential: "Very High",
				WorkStyle:       "Fast-paced and autonomous",
				Reasoning:       "Starting ventures rewards your bias toward action.",
			},
			{
				Title:           "Sales Professional",
				Description:     "Your people skills and ability to think on your feet are perfect for sales.",
				Skills:          []string{"Persuasion", "Negotiation", "Relationship Building", "Resilience"},
				GrowthPotential: "High",
				WorkStyle:       "Energetic and competitive",
				Reasoning:       "Sales rewards quick thinking and charisma.",
			},
			{
				Title:           "Athlete/Sports Professional",
				Description:     "Your physical skills and competitive nature make you excellent in sports and athletics.",
				Skills:          []string{"Physical Fitness", "Discipline", "Teamwork", "Competitiveness"},
				GrowthPotential: "Medium",
				WorkStyle:       "Active and competitive",
				Reasoning:       "Competition brings out your best performance.",
			},
		},
	},
	"ESFP": {
		Habits: []model.HabitSuggestion{
			{
				Title:       "Social Connection",
				Description: "Maintain active social connections and enjoy time with friends and family.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        3,
				Reasoning:   "Time with people recharges you.",
			},
			{
				Title:       "Present Moment Awareness",
				Description: "Focus on enjoying and making the most of the present moment.",
				Category:    model.HabitCategoryMindfulness,
				Frequency:   model.HabitFrequencyDaily,
				Goal:        1,
				Reasoning:   "Being present amplifies your natural enjoyment of life.",
			},
			{
				Title:       "Helping Others",
				Description: "Find ways to help and support others in practical, hands-on ways.",
				Category:    model.HabitCategorySocial,
				Frequency:   model.HabitFrequencyWeekly,
				Goal:        2,
				Reasoning:   "Practical help lets your warmth make a difference.",
			},
		},
		CareerPaths: []model.CareerPath{
			{
				Title:           "Entertainment Professional",
				Description:     "Your outgoing nature and ability to entertain others make you excellent in entertainment.",
				Skills:          []string{"Performance", "Improvisation", "Stage Presence", "Communication"},
				GrowthPotential: "Medium",
				WorkStyle:       "Expressive and social",
				Reasoning:       "Entertaining others channels your energy and charm.",
			},
			{
				Title:           "Customer Service Representative",
				Description:     "Your people skills and desire to help others are perfect for customer service.",
				Skills:          []string{"Communication", "Patience", "Problem Solving", "Empathy"},
				GrowthPotential: "Medium",
				WorkStyle:       "Friendly and people-facing",
				Reasoning:       "Helping customers directly suits your warmth.",
			},
			{
				Title:           "Tour Guide",
				Description:     "Your enthusiasm and ability to connect with people make you excellent at guiding and teaching others.",
				Skills:          []string{"Public Speaking", "Storytelling", "Local Knowledge", "Hospitality"},
				GrowthPotential: "Medium",
				WorkStyle:       "Lively and on-the-move",
				Reasoning:       "Guiding groups combines enthusiasm with connection.",
			},
		},
	},
}

var defaultRecommendations = model.Recommendations{
	Habits: []model.HabitSuggestion{
		{
			Title:       "Daily Reflection",
			Description: "Take time each day to reflect on your experiences and personal growth.",
			Category:    model.HabitCategoryMindfulness,
			Frequency:   model.HabitFrequencyDaily,
			Goal:        1,
			Reasoning:   "Regular reflection helps you understand yourself better and track your personal growth.",
		},
		{
			Title:       "Goal Setting",
			Description: "Set clear, achievable goals that align with your values and personality.",
			Category:    model.HabitCategoryProductivity,
			Frequency:   model.HabitFrequencyWeekly,
			Goal:        3,
			Reasoning:   "Clear goals provide direction and motivation for your personal development journey.",
		},
		{
			Title:       "Learning Time",
			Description: "Dedicate time to learning something new that interests you.",
			Category:    model.HabitCategoryLearning,
			Frequency:   model.HabitFrequencyWeekly,
			Goal:        2,
			Reasoning:   "Continuous learning keeps your mind engaged and helps you grow personally and professionally.",
		},
	},
	CareerPaths: []model.CareerPath{
		{
			Title:           "Personal Development",
			Description:     "Focus on roles that allow you to grow and develop your unique strengths.",
			Skills:          []string{"Self-Awareness", "Growth Mindset", "Adaptability", "Communication"},
			GrowthPotential: "High",
			WorkStyle:       "Flexible and growth-oriented",
			Reasoning:       "Roles that emphasize personal development align with your desire for growth and self-improvement.",
		},
		{
			Title:           "Creative Expression",
			Description:     "Consider careers that let you express your creativity and individuality.",
			Skills:          []string{"Creativity", "Innovation", "Self-Expression", "Problem Solving"},
			GrowthPotential: "High",
			WorkStyle:       "Creative and autonomous",
			Reasoning:       "Creative roles allow you to express your unique perspective and innovative thinking.",
		},
		{
			Title:           "Helping Others",
			Description:     "Look for opportunities to help others while using your natural talents.",
			Skills:          []string{"Empathy", "Communication", "Problem Solving", "Patience"},
			GrowthPotential: "Medium",
			WorkStyle:       "Collaborative and service-oriented",
			Reasoning:       "Helping others provides meaningful work that aligns with your values and strengths.",
		},
	},
}
