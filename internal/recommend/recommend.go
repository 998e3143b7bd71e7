// Package recommend maps a category score to prioritized advice.
package recommend

// recommendations lists five advice items per category, highest priority
// first. The tier of the category percentage decides how many are returned.
var recommendations = map[string][]string{
	"policy": {
		"Develop a comprehensive cybersecurity policy document",
		"Establish regular policy review cycles (annually recommended)",
		"Create and test an incident response plan",
		"Implement security governance framework",
		"Define roles and responsibilities for security",
	},
	"access": {
		"Implement multi-factor authentication for all users",
		"Deploy role-based access control (RBAC) system",
		"Conduct quarterly access reviews and audits",
		"Implement privileged access management (PAM)",
		"Establish user provisioning and deprovisioning procedures",
	},
	"data": {
		"Encrypt all employee devices and storage systems",
		"Implement automated encrypted backup solutions",
		"Develop data classification and handling procedures",
		"Deploy data loss prevention (DLP) tools",
		"Establish data retention and disposal policies",
	},
	"network": {
		"Deploy next-generation firewall with monitoring",
		"Implement 24/7 network traffic monitoring",
		"Secure remote access with VPN and MFA",
		"Conduct regular network security assessments",
		"Implement network segmentation and zero trust",
	},
	"training": {
		"Establish regular security awareness training program",
		"Conduct monthly phishing simulation exercises",
		"Create dedicated security incident reporting system",
		"Develop security culture and communication plan",
		"Provide role-specific security training",
	},
}

// For returns the advice list for a category, truncated by score tier:
// >=80 keeps 2 items, >=60 keeps 3, >=40 keeps 4, below 40 keeps all 5.
// Unknown category ids return an empty list.
func For(categoryID string, percent int) []string {
	recs, ok := recommendations[categoryID]
	if !ok {
		return nil
	}
	switch {
	case percent >= 80:
		return recs[:2]
	case percent >= 60:
		return recs[:3]
	case percent >= 40:
		return recs[:4]
	default:
		return recs
	}
}
