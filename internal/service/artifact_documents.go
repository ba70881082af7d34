package service

// Plain-text exercise documents. Each ends with the question the learner is
// expected to answer.

func passwordHashesDoc() (FileAsset, error) {
	content := `# Password Hash Cracking Challenge
# Find the original passwords for these MD5 hashes

Hash List:
482c811da5d5b4bc6d497ffa98491e38
21232f297a57a5a743894a0e4a801fc3
b7a875fc1ea228b9061041b7cec4bd3c
d8578edf8458ce06fbc5bb76a58c5ca4
e10adc3949ba59abbe56e057f20f883e

# Common Password Wordlist:
password
admin
letmein
qwerty
123456
password123
welcome
monkey
dragon
master
github
login`
	return textAsset("password_hashes.txt", "text/plain", content)
}

func networkConfigDoc() (FileAsset, error) {
	content := `
NETWORK CONFIGURATION ANALYSIS

Router Configuration:
- Model: Cisco ASR 1000
- Firmware: 15.1(4)M12a
- Default admin credentials: admin/admin123
- SSH enabled on port 22
- Telnet enabled on port 23
- HTTP management on port 80 (no HTTPS)

Firewall Rules:
- Allow all traffic from 192.168.1.0/24
- Allow SSH from 10.0.0.0/8
- Block ICMP from external networks
- Allow HTTP/HTTPS from anywhere
- Allow FTP on port 21

Server Configuration:
- Web Server: Apache 2.4.41 on Ubuntu 18.04
- Database: MySQL 5.7 with root password 'password'
- File permissions: 777 on /var/www/html
- Log files: /var/log/apache2/access.log (world readable)

Network Topology:
- DMZ: 192.168.1.0/24
- Internal: 10.0.0.0/8
- External: Public IP range
- VPN: OpenVPN with weak encryption (DES)

Security Issues Found:
1. Default credentials on router
2. Unencrypted management interface
3. Weak database password
4. Overly permissive file permissions
5. Weak VPN encryption
6. Telnet enabled (unencrypted)
7. No intrusion detection system

What is the most critical security vulnerability in this configuration?
`
	return textAsset("network_config.txt", "text/plain", content)
}

func apiRequirementsDoc() (FileAsset, error) {
	content := `
API Authentication Endpoint Requirements

ENDPOINT: POST /api/auth/login

REQUIREMENTS:
1. Accept JSON payload with 'email' and 'password' fields
2. Validate email format (must contain @ and valid domain)
3. Validate password (minimum 8 characters, at least one letter and one number)
4. Check credentials against user database
5. Return appropriate HTTP status codes:
   - 200: Successful login
   - 400: Invalid input format
   - 401: Invalid credentials
   - 422: Validation errors

RESPONSE FORMAT:
Success (200):
{
  "access_token": "jwt_token_here",
  "token_type": "bearer",
  "user": {
    "id": "user_id",
    "email": "user@example.com"
  }
}

Error (400/401/422):
{
  "detail": "Error message",
  "error_code": "ERROR_CODE"
}

SECURITY REQUIREMENTS:
- Hash passwords using bcrypt
- Generate JWT tokens with 24-hour expiration
- Include rate limiting (max 5 attempts per minute)
- Log all authentication attempts

IMPLEMENTATION NOTES:
- Use FastAPI with Pydantic for validation
- Store user data in MongoDB
- Implement proper error handling
- Add input sanitization

What HTTP status code should be returned for successful login?
`
	return textAsset("api_requirements.txt", "text/plain", content)
}

func monitoringRequirementsDoc() (FileAsset, error) {
	content := `
APPLICATION MONITORING CONFIGURATION

Application: E-commerce Web Service
Environment: Production
Expected Load: 1000 requests/minute
Critical Thresholds:
- Response time: < 200ms
- Error rate: < 1%
- CPU usage: < 80%
- Memory usage: < 85%
- Disk usage: < 90%

Monitoring Requirements:
1. Real-time dashboards
2. Alert notifications (email, Slack)
3. Log aggregation and analysis
4. Performance metrics tracking
5. Error tracking and reporting
6. Uptime monitoring
7. Database performance monitoring

Alert Conditions:
- High response time (> 500ms for 5 minutes)
- High error rate (> 5% for 2 minutes)
- High resource usage (> 90% for 10 minutes)
- Service down (no response for 1 minute)
- Database connection failures
- Memory leaks detected

Tools to Configure:
- Prometheus for metrics collection
- Grafana for visualization
- AlertManager for notifications
- ELK Stack for log analysis
- New Relic for APM

How many monitoring rules would you create for this application?
`
	return textAsset("monitoring_requirements.txt", "text/plain", content)
}

func awsRequirementsDoc() (FileAsset, error) {
	content := `
AWS INFRASTRUCTURE REQUIREMENTS

Application: Multi-tier Web Application
Expected Users: 10,000 concurrent
Data Storage: 1TB initially, growing 20% monthly
Availability: 99.9% uptime requirement
Budget: $5,000/month maximum

Requirements:
1. Web Tier: Handle HTTP requests, serve static content
2. Application Tier: Process business logic, API endpoints
3. Database Tier: Store user data, transactions, analytics
4. CDN: Global content delivery
5. Load Balancing: Distribute traffic across instances
6. Auto Scaling: Handle traffic spikes
7. Security: VPC, security groups, IAM
8. Monitoring: CloudWatch, logging, alerting
9. Backup: Automated backups, disaster recovery
10. CI/CD: Code deployment pipeline

Performance Requirements:
- Response time: < 100ms
- Throughput: 10,000 requests/second
- Storage: 1TB with 99.999999999% durability
- Backup: Daily automated backups
- Recovery: RTO < 4 hours, RPO < 1 hour

Security Requirements:
- HTTPS only
- VPC with private subnets
- WAF protection
- DDoS protection
- Encryption at rest and in transit
- IAM roles with least privilege

How many AWS services would you use to build this infrastructure?
`
	return textAsset("aws_requirements.txt", "text/plain", content)
}

func securityRequirementsDoc() (FileAsset, error) {
	content := `
CLOUD SECURITY CONFIGURATION REQUIREMENTS

Environment: Multi-account AWS setup
Compliance: SOC 2, GDPR, HIPAA
Data Classification: PII, Financial, Health records

Security Controls Required:
1. Identity and Access Management (IAM)
   - MFA for all users
   - Role-based access control
   - Regular access reviews
   - Service accounts with limited permissions

2. Network Security
   - VPC with public/private subnets
   - Security groups (restrictive rules)
   - NACLs for additional layer
   - VPN for secure access

3. Data Protection
   - Encryption at rest (AES-256)
   - Encryption in transit (TLS 1.3)
   - Key management (AWS KMS)
   - Data classification and tagging

4. Monitoring and Logging
   - CloudTrail for API logging
   - CloudWatch for metrics
   - GuardDuty for threat detection
   - Config for compliance monitoring

5. Incident Response
   - Automated response playbooks
   - Security incident escalation
   - Forensic data collection
   - Communication protocols

How many security groups would you create for this multi-tier architecture?
`
	return textAsset("security_requirements.txt", "text/plain", content)
}

func userInterviewsDoc() (FileAsset, error) {
	content := `
USER INTERVIEW ANALYSIS - MOBILE APP FEEDBACK
Conducted: December 2024 | Participants: 20 users | Duration: 30-45 minutes each

INTERVIEW SUMMARIES:

User 1 (Sarah, 28, Marketing Manager):
"I love the app's design, but it's really slow to load. Sometimes I have to wait 10-15 seconds just to see my dashboard. The search function is also not very intuitive."

User 2 (Mike, 35, Sales Director):
"The slow loading is killing my productivity. I use this app 20+ times a day and the delays add up. Also, the notifications don't work properly on my phone."

User 3 (Lisa, 42, Operations Manager):
"Great features, terrible performance. The app crashes at least once a day, usually when I'm trying to upload files. The slow loading is the worst part though."

User 4 (David, 31, Project Manager):
"Slow loading times are frustrating. The interface is clean but I wish there was a dark mode. Also, the search could be better - it doesn't find things I know are there."

User 5 (Emma, 26, Content Creator):
"The app is beautiful but so slow! It takes forever to load images and videos. I also wish there was better organization for my content."

User 6 (James, 38, Finance Manager):
"Performance issues are my main concern. The slow loading affects my work flow. The reporting features are good but need to be faster."

User 7 (Anna, 29, HR Specialist):
"Love the functionality but hate the wait times. Slow loading is the biggest issue. Also, the mobile version needs work - it's not as responsive as the web version."

User 8 (Tom, 33, IT Manager):
"Technical issues: slow loading, occasional crashes, and the API seems unreliable. The core features work but performance needs improvement."

User 9 (Rachel, 27, Designer):
"Slow loading is my biggest pain point. The app has great potential but the performance issues make it hard to use daily. Also, the file upload is unreliable."

User 10 (Chris, 40, CEO):
"Slow loading times are affecting team productivity. We need faster performance and more reliable file handling. The concept is great but execution needs work."

User 11 (Maria, 32, Account Manager):
"Performance is the main issue - slow loading and crashes. The interface is nice but I need it to work faster. Also, better search functionality would help."

User 12 (John, 36, Developer):
"Slow loading is the primary concern. The app architecture seems solid but there are performance bottlenecks. Also, the mobile experience needs optimization."

User 13 (Sarah, 30, Marketing Coordinator):
"Love the features but hate the wait times. Slow loading is the biggest frustration. The design is great but performance needs to match."

User 14 (Mike, 34, Sales Manager):
"Slow loading is killing my efficiency. I use this app constantly and the delays are unacceptable. Also, the notifications are inconsistent."

User 15 (Lisa, 41, Operations Director):
"Performance issues are my main concern. Slow loading affects my daily workflow. The app has potential but needs to be faster and more reliable."

User 16 (David, 29, Project Coordinator):
"Slow loading times are frustrating. The interface is good but performance needs improvement. Also, better file organization would help."

User 17 (Emma, 25, Content Manager):
"The app is visually appealing but so slow! Loading times are terrible. I also need better content management features."

User 18 (James, 37, Finance Director):
"Slow loading is my biggest issue. It affects my productivity daily. The reporting is good but needs to be faster and more responsive."

User 19 (Anna, 28, HR Manager):
"Performance is the main problem - slow loading and occasional crashes. The functionality is there but execution needs work."

User 20 (Tom, 35, IT Director):
"Slow loading is the primary technical issue. The app has good features but performance bottlenecks are affecting user experience."

KEY THEMES IDENTIFIED:
1. Slow loading times (mentioned 18/20 times)
2. Performance issues (mentioned 15/20 times)
3. Mobile optimization (mentioned 8/20 times)
4. Search functionality (mentioned 6/20 times)
5. File upload reliability (mentioned 5/20 times)
6. Notification issues (mentioned 4/20 times)
7. Dark mode request (mentioned 3/20 times)

What is the most frequently mentioned pain point?
`
	return textAsset("user_interview_analysis.txt", "text/plain", content)
}
