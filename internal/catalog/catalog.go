// Package catalog holds the static assessment questionnaire: categories,
// questions, answer options and weights. The catalog is read-only process
// state; nothing mutates it after init.
package catalog

// Question is a single weighted multiple-choice question. Options are
// ordered best-first: the option at index 0 scores highest.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Weight  int      `json:"weight"`
}

// Category groups related questions under a titled section.
type Category struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

var categories = []Category{
	{
		ID:          "policy",
		Title:       "Security Policy & Governance",
		Description: "Evaluate your organization's security policies and governance framework",
		Questions: []Question{
			{
				ID:      "policy_1",
				Prompt:  "Do you have documented cybersecurity policies?",
				Options: []string{"Yes, comprehensive policies", "Yes, basic policies", "In development", "No policies"},
				Weight:  10,
			},
			{
				ID:      "policy_2",
				Prompt:  "How often do you review and update security policies?",
				Options: []string{"Annually", "Every 2 years", "As needed", "Never updated"},
				Weight:  8,
			},
			{
				ID:      "policy_3",
				Prompt:  "Do you have an incident response plan?",
				Options: []string{"Yes, regularly tested", "Yes, but not tested", "In development", "No plan"},
				Weight:  9,
			},
		},
	},
	{
		ID:          "access",
		Title:       "Access Control & Authentication",
		Description: "Assess your user access management and authentication systems",
		Questions: []Question{
			{
				ID:      "access_1",
				Prompt:  "Do you use multi-factor authentication (MFA)?",
				Options: []string{"Yes, for all users", "Yes, for admins only", "Partially implemented", "No MFA"},
				Weight:  10,
			},
			{
				ID:      "access_2",
				Prompt:  "How do you manage user access permissions?",
				Options: []string{"Role-based access control", "Manual assignment", "Default permissions", "No formal process"},
				Weight:  8,
			},
			{
				ID:      "access_3",
				Prompt:  "Do you regularly review and audit user access permissions?",
				Options: []string{"Monthly", "Quarterly", "Annually", "Never"},
				Weight:  7,
			},
		},
	},
	{
		ID:          "data",
		Title:       "Data Protection & Encryption",
		Description: "Review your data protection measures and encryption practices",
		Questions: []Question{
			{
				ID:      "data_1",
				Prompt:  "Are employee devices encrypted?",
				Options: []string{"All devices encrypted", "Partially encrypted", "Encryption planned", "No encryption"},
				Weight:  9,
			},
			{
				ID:      "data_2",
				Prompt:  "How do you backup critical data?",
				Options: []string{"Automated encrypted backups", "Manual encrypted backups", "Unencrypted backups", "No regular backups"},
				Weight:  8,
			},
			{
				ID:      "data_3",
				Prompt:  "Do you have a data classification system?",
				Options: []string{"Yes, fully implemented", "Partially implemented", "In development", "No classification"},
				Weight:  6,
			},
		},
	},
	{
		ID:          "network",
		Title:       "Network Security",
		Description: "Evaluate your network security infrastructure and monitoring",
		Questions: []Question{
			{
				ID:      "network_1",
				Prompt:  "Do you use firewalls?",
				Options: []string{"Next-gen firewall + monitoring", "Basic firewall", "Software firewall only", "No firewall"},
				Weight:  8,
			},
			{
				ID:      "network_2",
				Prompt:  "Do you monitor network traffic for threats?",
				Options: []string{"24/7 monitoring + alerts", "Regular monitoring", "Occasional monitoring", "No monitoring"},
				Weight:  7,
			},
			{
				ID:      "network_3",
				Prompt:  "How do you secure remote access?",
				Options: []string{"VPN + MFA", "VPN only", "Direct access with password", "No remote access controls"},
				Weight:  9,
			},
		},
	},
	{
		ID:          "training",
		Title:       "Security Awareness & Training",
		Description: "Assess your employee security training and awareness programs",
		Questions: []Question{
			{
				ID:      "training_1",
				Prompt:  "Do you provide regular security training?",
				Options: []string{"Monthly training", "Quarterly training", "Annual training", "No formal training"},
				Weight:  7,
			},
			{
				ID:      "training_2",
				Prompt:  "Do you conduct phishing simulation tests?",
				Options: []string{"Monthly simulations", "Quarterly simulations", "Annual simulations", "No simulations"},
				Weight:  6,
			},
			{
				ID:      "training_3",
				Prompt:  "How do employees report security incidents?",
				Options: []string{"Dedicated reporting system", "IT team email", "Informal reporting", "No reporting process"},
				Weight:  5,
			},
		},
	},
}

// Categories returns the full catalog in presentation order.
func Categories() []Category {
	return categories
}

// QuestionCount returns the total number of questions across all categories.
func QuestionCount() int {
	n := 0
	for _, c := range categories {
		n += len(c.Questions)
	}
	return n
}

// FindCategory returns the category with the given id.
func FindCategory(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
