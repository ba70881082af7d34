package service

import "pathfinder_backend/internal/model"

// seedFields returns the built-in career fields.
func seedFields() []model.Field {
	return []model.Field{
		{ID: "software-engineering", Name: "Software Engineering", Description: "Build, maintain, and scale software applications and systems", Icon: "💻", Color: "blue"},
		{ID: "cybersecurity", Name: "Cybersecurity", Description: "Protect systems, networks, and data from digital threats", Icon: "🔒", Color: "red"},
		{ID: "data-science", Name: "Data Science", Description: "Extract insights and build predictive models from data", Icon: "📊", Color: "green"},
		{ID: "devops", Name: "DevOps", Description: "Bridge development and operations for faster, reliable deployments", Icon: "⚙️", Color: "purple"},
		{ID: "cloud-computing", Name: "Cloud Computing", Description: "Design and manage scalable cloud infrastructure and services", Icon: "☁️", Color: "sky"},
		{ID: "mobile-development", Name: "Mobile Development", Description: "Create native and cross-platform mobile applications", Icon: "📱", Color: "indigo"},
		{ID: "product-management", Name: "Product Management", Description: "Define product strategy, roadmap, and drive product development", Icon: "🎯", Color: "emerald"},
	}
}

// seedSimulations returns the built-in exercise catalog, grading data included.
func seedSimulations() []model.Simulation {
	return []model.Simulation{
		// Software Engineering
		{
			ID:                 "se-debugging-1",
			Title:              "Debug Shopping Cart Code",
			Description:        "Find and fix critical bugs in a Python e-commerce shopping cart",
			FieldID:            "software-engineering",
			SubField:           "Debugging",
			Difficulty:         "Medium",
			EstimatedTime:      "20 minutes",
			Briefing:           "You're a software engineer on an e-commerce team. The shopping cart feature has been causing issues in production. Review the code and identify the bugs causing problems.",
			Instructions:       "1. Download the Python code file\n2. Carefully review each function for logical errors\n3. Count the total number of bugs present\n4. Submit the number of bugs found",
			TaskType:           "debugging",
			ExpectedAnswerType: model.AnswerNumber,
			Badge:              "Debugging Specialist",
			CorrectAnswer:      "5",
			FeedbackCorrect:    "Excellent debugging skills! You've identified all 5 critical bugs in the shopping cart code. This type of systematic code review is essential for software engineers who need to maintain code quality and prevent production issues.",
			FeedbackIncorrect:  "Good effort on the debugging challenge! There are 5 bugs: (1) assignment vs comparison operator (= instead of ==), (2) missing negative discount validation, (3) no minimum order validation, (4) race condition in cart updates, (5) missing null check for empty cart. Keep practicing code review skills!",
			Questions: []model.Question{
				{
					QuestionID:         "q1",
					Prompt:             "How many critical bugs are hiding in this code that could crash the system under load?",
					ExpectedAnswerType: model.AnswerNumber,
					CorrectAnswer:      "5",
					FeedbackCorrect:    "There are 5 critical logic issues impacting reliability.",
					FeedbackIncorrect:  "Count distinct logic bugs across functions; check assignment vs comparison, input validation, concurrency, and empty cart checks.",
				},
				{
					QuestionID:         "q2",
					Prompt:             "What's the most dangerous validation missing that hackers could exploit?",
					ExpectedAnswerType: model.AnswerText,
					CorrectAnswer:      "negative discount validation",
					Rule:               model.GradingRule{MatchMode: model.MatchContains, AcceptedAnswers: model.StringList{"negative discount"}},
					FeedbackCorrect:    "Negative discount validation is missing; values below 0 must be rejected.",
					FeedbackIncorrect:  "Review discount handling: add validation to prevent negative or over-100% discounts.",
				},
			},
		},
		{
			ID:                 "se-development-1",
			Title:              "Build REST API Endpoint",
			Description:        "Create a REST API endpoint for user authentication with proper validation",
			FieldID:            "software-engineering",
			SubField:           "Development",
			Difficulty:         "Hard",
			EstimatedTime:      "30 minutes",
			Briefing:           "You're a backend developer tasked with creating a user authentication endpoint. The frontend team needs a secure API that validates user credentials and returns appropriate responses.",
			Instructions:       "1. Download the requirements document\n2. Implement the authentication endpoint\n3. Add proper input validation and error handling\n4. Submit the HTTP status code for successful login",
			TaskType:           "development",
			ExpectedAnswerType: model.AnswerNumber,
			Badge:              "API Development Expert",
			CorrectAnswer:      "200",
			FeedbackCorrect:    "Perfect! You've correctly identified HTTP 200 as the success status code for login. Understanding HTTP status codes and API design is fundamental for backend developers building robust web services.",
			FeedbackIncorrect:  "Good attempt at the API development task! The correct HTTP status code for successful login is 200. This indicates the request was processed successfully and the user is authenticated.",
			Questions: []model.Question{
				{QuestionID: "q1", Prompt: "What HTTP status code indicates successful login?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "200"},
				{QuestionID: "q2", Prompt: "Should passwords be stored in plaintext? (yes/no)", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "no"},
				{QuestionID: "q3", Prompt: "What security measure prevents brute force attacks?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "rate limiting"},
			},
		},
		{
			ID:                 "se-testing-1",
			Title:              "Write Unit Tests",
			Description:        "Create comprehensive unit tests for a calculator class",
			FieldID:            "software-engineering",
			SubField:           "Testing",
			Difficulty:         "Easy",
			EstimatedTime:      "15 minutes",
			Briefing:           "You're a QA engineer responsible for ensuring code quality. The development team has created a calculator class and needs you to write unit tests to verify all functionality works correctly.",
			Instructions:       "1. Download the calculator class code\n2. Write unit tests for all methods\n3. Include edge cases and error conditions\n4. Submit the total number of test cases you would write",
			TaskType:           "testing",
			ExpectedAnswerType: model.AnswerNumber,
			Badge:              "Quality Assurance Professional",
			CorrectAnswer:      "7",
			FeedbackCorrect:    "Outstanding! You've identified 7 comprehensive test cases for the calculator class. This shows strong QA engineering skills - thorough testing is crucial for ensuring software reliability and preventing bugs in production.",
			FeedbackIncorrect:  "Good effort on the testing challenge! The calculator class needs 7 test cases: basic arithmetic, division by zero, square root of negatives, history tracking, edge cases, input validation, and memory management.",
			Questions: []model.Question{
				{QuestionID: "q1", Prompt: "How many unit tests will you write?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "7"},
				{QuestionID: "q2", Prompt: "Name one edge case to test.", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "division by zero"},
			},
		},

		// Cybersecurity
		{
			ID:                 "cyber-password-1",
			Title:              "Password Security Assessment",
			Description:        "Analyze password hashes to identify security vulnerabilities",
			FieldID:            "cybersecurity",
			SubField:           "Security Analysis",
			Difficulty:         "Medium",
			EstimatedTime:      "20 minutes",
			Briefing:           "You're a cybersecurity analyst conducting a security audit. A client's password database was compromised. Your job is to crack the hashes and assess the security risk.",
			Instructions:       "1. Download the password hash file\n2. Use the provided wordlist to crack the MD5 hashes\n3. Identify at least 3 cracked passwords\n4. Submit the passwords separated by commas",
			TaskType:           "security",
			ExpectedAnswerType: model.AnswerList,
			Badge:              "Security Analyst",
			CorrectAnswer:      "password123,admin,letmein",
			Rule:               model.GradingRule{AcceptedAnswers: model.StringList{"password123", "admin", "letmein"}, MinListMatches: 2},
			FeedbackCorrect:    "Excellent security analysis! You've successfully cracked the weak passwords, demonstrating strong cybersecurity skills. This type of password security assessment is crucial for security professionals protecting organizational data.",
			FeedbackIncorrect:  "Good attempt at the password security challenge! The cracked passwords are: password123, admin, letmein. These are common weak passwords that should be avoided in production systems.",
			Questions: []model.Question{
				{
					QuestionID:         "q1",
					Prompt:             "Provide at least two cracked passwords (comma-separated)",
					ExpectedAnswerType: model.AnswerList,
					CorrectAnswer:      "password123,admin,letmein",
					Rule:               model.GradingRule{AcceptedAnswers: model.StringList{"password123", "admin", "letmein"}, MinListMatches: 2},
				},
				{QuestionID: "q2", Prompt: "What hash algorithm is used?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "md5"},
			},
		},
		{
			ID:                 "cyber-penetration-1",
			Title:              "Network Vulnerability Scan",
			Description:        "Identify security vulnerabilities in a network configuration",
			FieldID:            "cybersecurity",
			SubField:           "Penetration Testing",
			Difficulty:         "Hard",
			EstimatedTime:      "25 minutes",
			Briefing:           "You're a penetration tester conducting a security assessment. The client wants you to identify potential vulnerabilities in their network configuration and suggest remediation steps.",
			Instructions:       "1. Download the network configuration file\n2. Analyze the setup for common vulnerabilities\n3. Identify the most critical security issue\n4. Submit the vulnerability type (e.g., 'open_port', 'weak_encryption', 'default_credentials')",
			TaskType:           "security",
			ExpectedAnswerType: model.AnswerText,
			Badge:              "Penetration Tester",
			CorrectAnswer:      "default_credentials",
			Rule:               model.GradingRule{MatchMode: model.MatchContains, AcceptedAnswers: model.StringList{"default credentials", "weak password"}},
			FeedbackCorrect:    "Perfect! You've identified default credentials as the most critical vulnerability. This shows strong penetration testing skills - default credentials are often the easiest entry point for attackers and should be the first thing to secure.",
			FeedbackIncorrect:  "Good effort on the penetration testing task! The most critical vulnerability is 'default credentials' - the router is using admin/admin123 which is easily guessable and should be changed immediately.",
			Questions: []model.Question{
				{
					QuestionID:         "q1",
					Prompt:             "What is the most critical vulnerability?",
					ExpectedAnswerType: model.AnswerText,
					CorrectAnswer:      "default_credentials",
					Rule:               model.GradingRule{MatchMode: model.MatchContains, AcceptedAnswers: model.StringList{"default credentials", "weak password"}},
				},
				{QuestionID: "q2", Prompt: "Is telnet enabled? (yes/no)", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "yes"},
				{QuestionID: "q3", Prompt: "How many minutes would it take to exploit this network?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "5"},
			},
		},

		// Data Science
		{
			ID:                 "ds-analysis-1",
			Title:              "Customer Churn Prediction",
			Description:        "Analyze customer data to predict churn probability",
			FieldID:            "data-science",
			SubField:           "Data Analysis",
			Difficulty:         "Medium",
			EstimatedTime:      "25 minutes",
			Briefing:           "You're a data scientist at a SaaS company. The product team wants to understand which customers are likely to churn so they can implement retention strategies.",
			Instructions:       "1. Download the customer dataset\n2. Analyze the correlation between features and churn\n3. Identify the strongest predictor of churn\n4. Submit the feature name with highest correlation",
			TaskType:           "analysis",
			ExpectedAnswerType: model.AnswerText,
			Badge:              "Data Analyst",
			CorrectAnswer:      "Monthly_Charges",
			Rule:               model.GradingRule{MatchMode: model.MatchContains, AcceptedAnswers: model.StringList{"monthly charges", "monthlycharges"}},
			FeedbackCorrect:    "Excellent data analysis! You've correctly identified Monthly_Charges as the strongest predictor of customer churn. This type of feature analysis is crucial for data scientists building predictive models and business intelligence systems.",
			FeedbackIncorrect:  "Good attempt at the churn analysis! The strongest predictor is 'Monthly_Charges' - customers with higher monthly charges are more likely to churn, making this a key feature for retention strategies.",
			Questions: []model.Question{
				{
					QuestionID:         "q1",
					Prompt:             "Which feature has the strongest correlation with churn?",
					ExpectedAnswerType: model.AnswerText,
					CorrectAnswer:      "Monthly_Charges",
					Rule:               model.GradingRule{MatchMode: model.MatchContains, AcceptedAnswers: model.StringList{"monthly charges", "monthlycharges"}},
					FeedbackCorrect:    "Spot on - Monthly_Charges shows the strongest positive correlation with churn.",
					FeedbackIncorrect:  "Check correlations again - pricing-related features (e.g., Monthly_Charges) are highly predictive.",
				},
				{
					QuestionID:         "q2",
					Prompt:             "Is churn higher for month-to-month contracts? (yes/no)",
					ExpectedAnswerType: model.AnswerText,
					CorrectAnswer:      "yes",
					FeedbackCorrect:    "Correct - churn is higher for month-to-month contracts versus fixed terms.",
					FeedbackIncorrect:  "Compare churn rates across Contract_Type - month-to-month users churn more often.",
				},
				{
					QuestionID:         "q3",
					Prompt:             "Name one feature that reduces churn risk.",
					ExpectedAnswerType: model.AnswerText,
					CorrectAnswer:      "online_security",
					FeedbackCorrect:    "Yes - Online_Security (and similar add-ons) reduce churn likelihood.",
					FeedbackIncorrect:  "Consider features that add security/support; they are associated with lower churn (e.g., Online_Security).",
				},
			},
		},
		{
			ID:                 "ds-modeling-1",
			Title:              "Build ML Pipeline",
			Description:        "Create a machine learning pipeline for email classification",
			FieldID:            "data-science",
			SubField:           "Machine Learning",
			Difficulty:         "Hard",
			EstimatedTime:      "35 minutes",
			Briefing:           "You're a machine learning engineer tasked with building an email spam classifier. The marketing team needs to automatically filter spam emails from their customer communications.",
			Instructions:       "1. Download the email dataset\n2. Preprocess the text data\n3. Choose appropriate features and model\n4. Submit the accuracy percentage of your model",
			TaskType:           "development",
			ExpectedAnswerType: model.AnswerPercentage,
			Badge:              "Machine Learning Engineer",
			CorrectAnswer:      "85%",
			FeedbackCorrect:    "Outstanding! You've achieved 85% accuracy on the email spam classifier, demonstrating strong machine learning skills. This level of accuracy is excellent for a production spam filter and shows good model selection and feature engineering.",
			FeedbackIncorrect:  "Good effort on the ML pipeline! The target accuracy is 85% - this requires proper text preprocessing, feature extraction, and model selection. Try different algorithms like Naive Bayes or SVM for better results.",
			Questions: []model.Question{
				{
					QuestionID:         "q1",
					Prompt:             "What's your AI guardian's kill rate against spam? (accuracy percentage, e.g., 85%)",
					ExpectedAnswerType: model.AnswerPercentage,
					CorrectAnswer:      "85%",
					FeedbackCorrect:    "Great - hitting ~85% accuracy meets the target for this dataset.",
					FeedbackIncorrect:  "Aim for around 85% accuracy; review preprocessing and model selection.",
				},
				{
					QuestionID:         "q2",
					Prompt:             "Which classic algorithm is your spam-fighting champion?",
					ExpectedAnswerType: model.AnswerText,
					CorrectAnswer:      "naive bayes",
					FeedbackCorrect:    "Naive Bayes is a solid baseline for spam filtering.",
					FeedbackIncorrect:  "Consider classic text classifiers like Naive Bayes for this task.",
				},
				{
					QuestionID:         "q3",
					Prompt:             "What's your secret weapon for turning text into model ammunition?",
					ExpectedAnswerType: model.AnswerText,
					CorrectAnswer:      "tf-idf",
					FeedbackCorrect:    "TF-IDF is an appropriate feature extraction approach here.",
					FeedbackIncorrect:  "Use a standard feature extraction method like TF-IDF for text.",
				},
			},
		},

		// DevOps
		{
			ID:                 "devops-deployment-1",
			Title:              "Docker Containerization",
			Description:        "Containerize a web application using Docker",
			FieldID:            "devops",
			SubField:           "Deployment",
			Difficulty:         "Medium",
			EstimatedTime:      "20 minutes",
			Briefing:           "You're tasked with containerizing a small web application so it runs consistently across environments. Use Docker to define the base image, install dependencies, copy application code, and configure the runtime. Focus on small image size, security, and repeatable builds.",
			Instructions:       "1. Download the application code\n2. Create a Dockerfile with: base image, dependencies, application files, and runtime configuration\n3. Optimize for size and security (pin versions, use a small base image, limit layers)\n4. Build and run the image locally to verify\n5. Submit a summary of your image layers and choices",
			TaskType:           "development",
			ExpectedAnswerType: model.AnswerNumber,
			Badge:              "DevOps Engineer",
			CorrectAnswer:      "4",
			FeedbackCorrect:    "Perfect! You've correctly identified 4 Docker layers for the web application. This shows strong containerization skills - understanding Docker layer optimization is crucial for DevOps engineers building efficient deployment pipelines.",
			FeedbackIncorrect:  "Good attempt at the Docker containerization! The optimal Dockerfile should have 4 layers: base image, dependencies, application code, and runtime configuration. This minimizes image size and improves build performance.",
			Questions: []model.Question{
				{QuestionID: "q1", Prompt: "How many strategic layers does your Docker fortress have?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "4"},
				{QuestionID: "q2", Prompt: "Should you pin dependency versions to avoid chaos? (yes/no)", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "yes"},
				{QuestionID: "q3", Prompt: "What's your secret weapon for creating lightweight containers?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "alpine"},
			},
		},
		{
			ID:                 "devops-monitoring-1",
			Title:              "Set Up Application Monitoring",
			Description:        "Configure monitoring and alerting for a production application",
			FieldID:            "devops",
			SubField:           "Monitoring",
			Difficulty:         "Hard",
			EstimatedTime:      "30 minutes",
			Briefing:           "Design and configure a practical monitoring and alerting setup for a production web application. Ensure coverage across performance, errors, availability, and infrastructure resources. Provide clear alert thresholds and a dashboard plan for day-to-day visibility.",
			Instructions:       "1. Download the application architecture blueprint\n2. Define monitoring coverage: latency, error rate, traffic, saturation, uptime, database and resource metrics\n3. Configure alert thresholds and notification routes for critical events\n4. Build dashboards that surface key service and infrastructure views\n5. Submit a concise summary of rules, thresholds, and dashboards",
			TaskType:           "analysis",
			ExpectedAnswerType: model.AnswerNumber,
			Badge:              "Site Reliability Engineer",
			CorrectAnswer:      "6",
			FeedbackCorrect:    "Excellent monitoring setup! You've identified 6 essential monitoring rules for the production application. This shows strong SRE skills - comprehensive monitoring is crucial for maintaining system reliability and quickly detecting issues.",
			FeedbackIncorrect:  "Good effort on the monitoring configuration! You need 6 monitoring rules: high response time, high error rate, high resource usage, service down, database failures, and memory leaks. Each rule should have appropriate thresholds and alerting.",
			Questions: []model.Question{
				{QuestionID: "q1", Prompt: "How many critical monitoring rules will protect the empire?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "6"},
				{QuestionID: "q2", Prompt: "What's the most important metric for user happiness?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "response time"},
				{QuestionID: "q3", Prompt: "Which tool transforms metrics into visual masterpieces?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "grafana"},
			},
		},

		// Cloud Computing
		{
			ID:                 "cloud-aws-1",
			Title:              "AWS Infrastructure Design",
			Description:        "Design a scalable AWS infrastructure for a web application",
			FieldID:            "cloud-computing",
			SubField:           "Infrastructure",
			Difficulty:         "Hard",
			EstimatedTime:      "30 minutes",
			Briefing:           "You're a cloud architect designing infrastructure for a growing startup. The application needs to be highly available, scalable, and cost-effective on AWS.",
			Instructions:       "1. Download the application requirements\n2. Design the AWS architecture\n3. Choose appropriate services and configurations\n4. Submit the number of AWS services you would use",
			TaskType:           "analysis",
			ExpectedAnswerType: model.AnswerNumber,
			Badge:              "Cloud Architect",
			CorrectAnswer:      "12",
			FeedbackCorrect:    "Outstanding! You've correctly identified 12 AWS services needed for the multi-tier architecture. This shows strong cloud architecture skills - understanding service selection and integration is crucial for building scalable cloud solutions.",
			FeedbackIncorrect:  "Good attempt at the AWS architecture! You need 12 services: EC2, RDS, S3, CloudFront, ALB, Auto Scaling, VPC, IAM, CloudWatch, Route 53, SNS, and Lambda. Each service serves a specific purpose in the architecture.",
			Questions: []model.Question{
				{QuestionID: "q1", Prompt: "How many AWS services will you use?", ExpectedAnswerType: model.AnswerNumber, Hints: model.StringList{"Double digits."}, CorrectAnswer: "12"},
				{QuestionID: "q2", Prompt: "Name the DNS service in AWS.", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Global DNS."}, CorrectAnswer: "route 53"},
				{QuestionID: "q3", Prompt: "Which service provides object storage?", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Buckets."}, CorrectAnswer: "s3"},
			},
		},
		{
			ID:                 "cloud-security-1",
			Title:              "Cloud Security Configuration",
			Description:        "Configure security groups and IAM policies for cloud resources",
			FieldID:            "cloud-computing",
			SubField:           "Security",
			Difficulty:         "Medium",
			EstimatedTime:      "25 minutes",
			Briefing:           "You're a cloud security engineer responsible for securing AWS resources. The company has strict security requirements and needs proper access controls and network security.",
			Instructions:       "1. Download the security requirements\n2. Configure IAM policies and security groups\n3. Implement least privilege access\n4. Submit the number of security groups you would create",
			TaskType:           "security",
			ExpectedAnswerType: model.AnswerNumber,
			Badge:              "Cloud Security Engineer",
			CorrectAnswer:      "5",
			FeedbackCorrect:    "Perfect! You've identified 5 security groups needed for the multi-tier architecture. This shows strong cloud security skills - proper network segmentation is crucial for protecting cloud resources and implementing defense in depth.",
			FeedbackIncorrect:  "Good effort on the cloud security configuration! You need 5 security groups: web tier, application tier, database tier, bastion host, and load balancer. Each should have restrictive rules following least privilege principles.",
			Questions: []model.Question{
				{QuestionID: "q1", Prompt: "How many security groups will you create?", ExpectedAnswerType: model.AnswerNumber, Hints: model.StringList{"Each tier."}, CorrectAnswer: "5"},
				{QuestionID: "q2", Prompt: "Should all users have MFA? (yes/no)", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Best practice."}, CorrectAnswer: "yes"},
				{QuestionID: "q3", Prompt: "Name the AWS key management service.", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Keys."}, CorrectAnswer: "kms"},
			},
		},

		// Mobile Development
		{
			ID:                 "mobile-native-1",
			Title:              "iOS App Performance Optimization",
			Description:        "Optimize an iOS app for better performance and user experience",
			FieldID:            "mobile-development",
			SubField:           "Native Development",
			Difficulty:         "Hard",
			EstimatedTime:      "30 minutes",
			Briefing:           "You're an iOS developer working on a performance-critical app. Users are reporting slow load times and crashes. You need to identify and fix the performance bottlenecks.",
			Instructions:       "1. Download the iOS app code\n2. Analyze performance issues\n3. Implement optimizations\n4. Submit the number of performance issues you identified",
			TaskType:           "development",
			ExpectedAnswerType: model.AnswerNumber,
			Badge:              "iOS Developer",
			CorrectAnswer:      "8",
			FeedbackCorrect:    "Excellent performance analysis! You've identified all 8 performance issues in the iOS app code. This shows strong mobile development skills - performance optimization is crucial for creating smooth, responsive mobile applications.",
			FeedbackIncorrect:  "Good attempt at the iOS performance optimization! There are 8 issues: no cell reuse, main thread blocking, synchronous image loading, heavy computation, memory leaks, inefficient cell creation, unoptimized images, and poor memory management.",
			Questions: []model.Question{
				{QuestionID: "q1", Prompt: "How many performance issues can you spot?", ExpectedAnswerType: model.AnswerNumber, Hints: model.StringList{"Scroll, memory, threads."}, CorrectAnswer: "8"},
				{QuestionID: "q2", Prompt: "Name one threading-related issue.", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"UI stalls."}, CorrectAnswer: "main thread blocking"},
				{QuestionID: "q3", Prompt: "How should large images be loaded?", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Not sync."}, CorrectAnswer: "asynchronously"},
			},
		},
		{
			ID:                 "mobile-cross-1",
			Title:              "React Native State Management",
			Description:        "Implement proper state management in a React Native app",
			FieldID:            "mobile-development",
			SubField:           "Cross-Platform",
			Difficulty:         "Medium",
			EstimatedTime:      "25 minutes",
			Briefing:           "You're a mobile developer working on a React Native app. The app's state management is becoming complex and causing bugs. You need to implement a proper state management solution.",
			Instructions:       "1. Download the React Native app code\n2. Analyze the current state management\n3. Implement Redux or Context API\n4. Submit the number of reducers you would create",
			TaskType:           "development",
			ExpectedAnswerType: model.AnswerNumber,
			Badge:              "React Native Developer",
			CorrectAnswer:      "3",
			FeedbackCorrect:    "Perfect! You've identified 3 reducers needed for proper React Native state management. This shows strong mobile development skills - understanding state management patterns is crucial for building maintainable cross-platform applications.",
			FeedbackIncorrect:  "Good effort on the React Native state management! You need 3 reducers: userReducer (for user data), uiReducer (for UI state), and errorReducer (for error handling). This provides clean separation of concerns and better maintainability.",
			Questions: []model.Question{
				{QuestionID: "q1", Prompt: "How many reducers would you create?", ExpectedAnswerType: model.AnswerNumber, Hints: model.StringList{"User, UI, errors."}, CorrectAnswer: "3"},
				{QuestionID: "q2", Prompt: "Name one state management library.", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Popular choice."}, CorrectAnswer: "redux"},
				{QuestionID: "q3", Prompt: "Is direct state mutation OK? (yes/no)", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Immutable updates."}, CorrectAnswer: "no"},
			},
		},

		// Product Management
		{
			ID:                 "pm-strategy-1",
			Title:              "Product Roadmap Planning",
			Description:        "Create a product roadmap based on user research and business goals",
			FieldID:            "product-management",
			SubField:           "Strategy",
			Difficulty:         "Hard",
			EstimatedTime:      "35 minutes",
			Briefing:           "You're a Product Manager at a SaaS startup. The CEO wants you to create a 6-month product roadmap based on user feedback, market research, and business objectives. You need to prioritize features and create a timeline.",
			Instructions:       "1. Download the user research data\n2. Analyze market trends and user needs\n3. Prioritize features using RICE scoring\n4. Submit the number of features you would include in Q1",
			TaskType:           "analysis",
			ExpectedAnswerType: model.AnswerNumber,
			Badge:              "Product Strategist",
			CorrectAnswer:      "5",
			FeedbackCorrect:    "Excellent product strategy! You've correctly identified 5 features for Q1 roadmap based on RICE scoring. This shows strong product management skills - prioritization and strategic thinking are crucial for successful product development.",
			FeedbackIncorrect:  "Good effort on the product roadmap planning! The correct answer is 5 features for Q1. Focus on features with highest RICE scores: User Authentication, Push Notifications, Data Export, Custom Themes, and Real-time Chat.",
			Questions: []model.Question{
				{QuestionID: "q1", Prompt: "How many features in Q1?", ExpectedAnswerType: model.AnswerNumber, Hints: model.StringList{"RICE picks."}, CorrectAnswer: "5"},
				{QuestionID: "q2", Prompt: "Name one high-impact feature.", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Security basics."}, CorrectAnswer: "user authentication"},
				{QuestionID: "q3", Prompt: "Which prioritization method was suggested?", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Acronym."}, CorrectAnswer: "rice"},
			},
		},
		{
			ID:                 "pm-analytics-1",
			Title:              "Product Metrics Analysis",
			Description:        "Analyze product metrics to identify growth opportunities",
			FieldID:            "product-management",
			SubField:           "Analytics",
			Difficulty:         "Medium",
			EstimatedTime:      "25 minutes",
			Briefing:           "You're a Product Manager analyzing your app's performance. The team needs insights on user behavior, feature adoption, and conversion funnels to make data-driven product decisions.",
			Instructions:       "1. Download the product analytics data\n2. Identify key trends and patterns\n3. Calculate the most important metric\n4. Submit the conversion rate percentage",
			TaskType:           "analysis",
			ExpectedAnswerType: model.AnswerPercentage,
			Badge:              "Product Analyst",
			CorrectAnswer:      "12.5%",
			FeedbackCorrect:    "Outstanding analytics analysis! You've correctly identified 12.5% as the conversion rate. This shows strong product analytics skills - understanding key metrics is crucial for data-driven product decisions and growth optimization.",
			FeedbackIncorrect:  "Good attempt at the product metrics analysis! The correct conversion rate is 12.5%. This is a key metric that shows how well your product converts visitors into active users.",
			Questions: []model.Question{
				{QuestionID: "q1", Prompt: "What is the conversion rate?", ExpectedAnswerType: model.AnswerPercentage, Hints: model.StringList{"Leads/users."}, CorrectAnswer: "12.5%"},
				{QuestionID: "q2", Prompt: "Name one metric trending down.", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Look at arrows."}, CorrectAnswer: "bounce rate"},
				{QuestionID: "q3", Prompt: "Which metric indicates engagement duration?", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Time spent."}, CorrectAnswer: "average session duration"},
			},
		},
		{
			ID:                 "pm-user-research-1",
			Title:              "User Interview Analysis",
			Description:        "Analyze user interview data to identify key insights and pain points",
			FieldID:            "product-management",
			SubField:           "User Research",
			Difficulty:         "Easy",
			EstimatedTime:      "20 minutes",
			Briefing:           "You're a Product Manager who just completed 20 user interviews. You need to analyze the feedback to identify the most common pain points and prioritize product improvements.",
			Instructions:       "1. Download the user interview transcripts\n2. Identify common themes and pain points\n3. Categorize feedback by priority\n4. Submit the most frequently mentioned pain point",
			TaskType:           "research",
			ExpectedAnswerType: model.AnswerText,
			Badge:              "User Research Specialist",
			CorrectAnswer:      "slow_loading",
			FeedbackCorrect:    "Perfect user research analysis! You've correctly identified 'slow_loading' as the most frequent pain point. This shows strong user research skills - identifying and prioritizing user pain points is crucial for product improvement and user satisfaction.",
			FeedbackIncorrect:  "Good effort on the user interview analysis! The most frequently mentioned pain point is 'slow_loading' - mentioned by 18 out of 20 users. This should be the top priority for product improvements.",
			Questions: []model.Question{
				{QuestionID: "q1", Prompt: "Most frequent pain point?", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Repeated many times."}, CorrectAnswer: "slow_loading"},
				{QuestionID: "q2", Prompt: "How many participants?", ExpectedAnswerType: model.AnswerNumber, Hints: model.StringList{"Two digits."}, CorrectAnswer: "20"},
				{QuestionID: "q3", Prompt: "Name one improvement requested.", ExpectedAnswerType: model.AnswerText, Hints: model.StringList{"Theme option."}, CorrectAnswer: "dark mode"},
			},
		},
	}
}

// mergeQuestionSets returns the refreshed question banks applied by the
// merge admin endpoint. Hints are richer than the initial seed; prompts and
// answers may be reworded without recreating the simulations.
func mergeQuestionSets() map[string][]model.Question {
	return map[string][]model.Question{
		// Software Engineering
		"se-debugging-1": {
			{
				QuestionID:         "q1",
				Prompt:             "How many logic bugs are present?",
				ExpectedAnswerType: model.AnswerNumber,
				CorrectAnswer:      "5",
				Hints:              model.StringList{"Scan for assignment vs comparison (==)", "Check edge cases in checkout flow"},
				FeedbackCorrect:    "There are 5 critical logic issues impacting reliability.",
				FeedbackIncorrect:  "Count distinct logic bugs across functions; check assignment vs comparison, input validation, concurrency, and empty cart checks.",
			},
			{
				QuestionID:         "q2",
				Prompt:             "Name one validation missing in discount handling.",
				ExpectedAnswerType: model.AnswerText,
				CorrectAnswer:      "negative discount",
				Hints:              model.StringList{"Validate input range before applying", "Percent should not be below 0 or above 100"},
				Rule:               model.GradingRule{MatchMode: model.MatchContains, AcceptedAnswers: model.StringList{"negative discount"}},
				FeedbackCorrect:    "Negative discount validation is missing; values below 0 must be rejected.",
				FeedbackIncorrect:  "Review discount handling: add validation to prevent negative or over-100% discounts.",
			},
		},
		"se-development-1": {
			{QuestionID: "q1", Prompt: "What HTTP status code indicates successful login?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "200", Hints: model.StringList{"2xx means success", "Common OK status"}},
			{QuestionID: "q2", Prompt: "Should passwords be stored in plaintext? (yes/no)", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "no", Hints: model.StringList{"Use hashing with salt", "Think about security best practices"}},
		},
		"se-testing-1": {
			{QuestionID: "q1", Prompt: "How many unit tests will you write?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "7", Hints: model.StringList{"Cover happy paths and errors", "Think about boundaries"}},
			{QuestionID: "q2", Prompt: "Name one edge case to test.", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "division by zero", Hints: model.StringList{"Invalid inputs", "Exceptional conditions"}},
		},

		// Cybersecurity
		"cyber-password-1": {
			{
				QuestionID:         "q1",
				Prompt:             "Provide at least two cracked passwords (comma-separated)",
				ExpectedAnswerType: model.AnswerList,
				CorrectAnswer:      "password123,admin,letmein",
				Hints:              model.StringList{"Start with common weak passwords", "Use the provided wordlist"},
				Rule:               model.GradingRule{AcceptedAnswers: model.StringList{"password123", "admin", "letmein"}, MinListMatches: 2},
			},
			{QuestionID: "q2", Prompt: "What hash algorithm is used?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "md5", Hints: model.StringList{"Look at the file header/title", "It's a widely known legacy hash"}},
		},
		"cyber-penetration-1": {
			{
				QuestionID:         "q1",
				Prompt:             "What is the most critical vulnerability?",
				ExpectedAnswerType: model.AnswerText,
				CorrectAnswer:      "default_credentials",
				Hints:              model.StringList{"Think about easy entry points", "Factory settings often remain unchanged"},
				Rule:               model.GradingRule{MatchMode: model.MatchContains, AcceptedAnswers: model.StringList{"default credentials", "weak password"}},
			},
			{QuestionID: "q2", Prompt: "Is telnet enabled? (yes/no)", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "yes", Hints: model.StringList{"Check legacy services", "Insecure remote access"}},
			{QuestionID: "q3", Prompt: "How many minutes would it take a real hacker to exploit this network?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "5", Hints: model.StringList{"Single-digit estimate", "Quick win for attackers"}},
		},

		// Data Science
		"ds-analysis-1": {
			{
				QuestionID:         "q1",
				Prompt:             "Which feature has the strongest correlation with churn?",
				ExpectedAnswerType: model.AnswerText,
				CorrectAnswer:      "Monthly_Charges",
				Hints:              model.StringList{"Look at continuous pricing data", "Higher bills often drive churn"},
				Rule:               model.GradingRule{MatchMode: model.MatchContains, AcceptedAnswers: model.StringList{"monthly charges", "monthlycharges"}},
				FeedbackCorrect:    "Spot on - Monthly_Charges shows the strongest positive correlation with churn.",
				FeedbackIncorrect:  "Check correlations again - pricing-related features (e.g., Monthly_Charges) are highly predictive.",
			},
			{
				QuestionID:         "q2",
				Prompt:             "Is churn higher for month-to-month contracts? (yes/no)",
				ExpectedAnswerType: model.AnswerText,
				CorrectAnswer:      "yes",
				Hints:              model.StringList{"Commitment length matters", "Short-term plans"},
				FeedbackCorrect:    "Correct - churn is higher for month-to-month contracts versus fixed terms.",
				FeedbackIncorrect:  "Compare churn rates across Contract_Type - month-to-month users churn more often.",
			},
			{
				QuestionID:         "q3",
				Prompt:             "Name one feature that reduces churn risk.",
				ExpectedAnswerType: model.AnswerText,
				CorrectAnswer:      "online_security",
				Hints:              model.StringList{"Value-added services help retention", "Think protection features"},
				FeedbackCorrect:    "Yes - Online_Security (and similar add-ons) reduce churn likelihood.",
				FeedbackIncorrect:  "Consider features that add security/support; they are associated with lower churn (e.g., Online_Security).",
			},
		},
		"ds-modeling-1": {
			{
				QuestionID:         "q1",
				Prompt:             "What accuracy did your model achieve? (e.g., 85%)",
				ExpectedAnswerType: model.AnswerPercentage,
				CorrectAnswer:      "85%",
				Hints:              model.StringList{"Two digits and a %", "Aim for mid-80s"},
				FeedbackCorrect:    "Great - hitting ~85% accuracy meets the target for this dataset.",
				FeedbackIncorrect:  "Aim for around 85% accuracy; review preprocessing and model selection.",
			},
			{
				QuestionID:         "q2",
				Prompt:             "Name one model suitable for spam detection.",
				ExpectedAnswerType: model.AnswerText,
				CorrectAnswer:      "naive bayes",
				Hints:              model.StringList{"Classic probabilistic model", "Also consider SVM"},
				FeedbackCorrect:    "Naive Bayes is a solid baseline for spam filtering.",
				FeedbackIncorrect:  "Consider classic text classifiers like Naive Bayes for this task.",
			},
			{
				QuestionID:         "q3",
				Prompt:             "Name a common text feature extraction method.",
				ExpectedAnswerType: model.AnswerText,
				CorrectAnswer:      "tf-idf",
				Hints:              model.StringList{"Term weighting", "Beyond bag-of-words"},
				FeedbackCorrect:    "TF-IDF is an appropriate feature extraction approach here.",
				FeedbackIncorrect:  "Use a standard feature extraction method like TF-IDF for text.",
			},
		},

		// DevOps
		"devops-deployment-1": {
			{QuestionID: "q1", Prompt: "How many layers are in your Docker image?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "4", Hints: model.StringList{"Base, deps, code, runtime", "Think build layering"}},
			{QuestionID: "q2", Prompt: "Should you pin dependency versions? (yes/no)", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "yes", Hints: model.StringList{"Repeatable builds", "Avoid 'latest'"}},
			{QuestionID: "q3", Prompt: "Name one way to reduce image size.", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "alpine", Hints: model.StringList{"Choose smaller base images", "Multi-stage builds help"}},
		},
		"devops-monitoring-1": {
			{QuestionID: "q1", Prompt: "How many monitoring rules will you create?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "6", Hints: model.StringList{"Cover latency, errors, traffic", "Don't forget resource saturation"}},
			{QuestionID: "q2", Prompt: "Name one metric for performance SLOs.", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "response time", Hints: model.StringList{"User-facing latency", "Think UX"}},
			{QuestionID: "q3", Prompt: "Which tool visualizes metrics?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "grafana", Hints: model.StringList{"Often paired with Prometheus", "Dashboards"}},
		},

		// Cloud Computing
		"cloud-aws-1": {
			{QuestionID: "q1", Prompt: "How many AWS services will you use?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "12", Hints: model.StringList{"Double digits."}},
			{QuestionID: "q2", Prompt: "Name the DNS service in AWS.", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "route 53", Hints: model.StringList{"Global DNS."}},
			{QuestionID: "q3", Prompt: "Which service provides object storage?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "s3", Hints: model.StringList{"Buckets."}},
		},
		"cloud-security-1": {
			{QuestionID: "q1", Prompt: "How many security groups will you create?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "5", Hints: model.StringList{"Each tier."}},
			{QuestionID: "q2", Prompt: "Should all users have MFA? (yes/no)", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "yes", Hints: model.StringList{"Best practice."}},
			{QuestionID: "q3", Prompt: "Name the AWS key management service.", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "kms", Hints: model.StringList{"Keys."}},
		},

		// Mobile Development
		"mobile-native-1": {
			{QuestionID: "q1", Prompt: "How many performance issues can you spot?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "8", Hints: model.StringList{"Scroll, memory, threads."}},
			{QuestionID: "q2", Prompt: "Name one threading-related issue.", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "main thread blocking", Hints: model.StringList{"UI stalls."}},
			{QuestionID: "q3", Prompt: "How should large images be loaded?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "asynchronously", Hints: model.StringList{"Not sync."}},
		},
		"mobile-cross-1": {
			{QuestionID: "q1", Prompt: "How many reducers would you create?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "3", Hints: model.StringList{"User, UI, errors."}},
			{QuestionID: "q2", Prompt: "Name one state management library.", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "redux", Hints: model.StringList{"Popular choice."}},
			{QuestionID: "q3", Prompt: "Is direct state mutation OK? (yes/no)", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "no", Hints: model.StringList{"Immutable updates."}},
		},

		// Product Management
		"pm-strategy-1": {
			{QuestionID: "q1", Prompt: "How many features in Q1?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "5", Hints: model.StringList{"RICE picks."}},
			{QuestionID: "q2", Prompt: "Name one high-impact feature.", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "user authentication", Hints: model.StringList{"Security basics."}},
			{QuestionID: "q3", Prompt: "Which prioritization method was suggested?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "rice", Hints: model.StringList{"Acronym."}},
		},
		"pm-analytics-1": {
			{QuestionID: "q1", Prompt: "What is the conversion rate?", ExpectedAnswerType: model.AnswerPercentage, CorrectAnswer: "12.5%", Hints: model.StringList{"Leads/users."}},
			{QuestionID: "q2", Prompt: "Name one metric trending down.", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "bounce rate", Hints: model.StringList{"Look at arrows."}},
			{QuestionID: "q3", Prompt: "Which metric indicates engagement duration?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "average session duration", Hints: model.StringList{"Time spent."}},
		},
		"pm-user-research-1": {
			{QuestionID: "q1", Prompt: "Most frequent pain point?", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "slow_loading", Hints: model.StringList{"Repeated many times."}},
			{QuestionID: "q2", Prompt: "How many participants?", ExpectedAnswerType: model.AnswerNumber, CorrectAnswer: "20", Hints: model.StringList{"Two digits."}},
			{QuestionID: "q3", Prompt: "Name one improvement requested.", ExpectedAnswerType: model.AnswerText, CorrectAnswer: "dark mode", Hints: model.StringList{"Theme option."}},
		},
	}
}
