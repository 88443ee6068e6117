// Package catalog holds the fixed framework, feature and agent
// catalogs. Everything here is defined at process start and immutable.
package catalog

import "github.com/appforge/appforge/pkg/models"

// FeatureClearFrontendDesign toggles the richer frontend-design
// instruction block in generation prompts.
const FeatureClearFrontendDesign = "clear-frontend-design"

// Agent ids referenced by the progress log choreography.
const (
	AgentTeamLeader = "team_leader"
	AgentCoder      = "coder"
	AgentFrontend   = "frontend"
	AgentDatabase   = "database"
)

var frameworks = []models.Framework{
	{Value: "aspnet-core-mvc", Label: "ASP.NET Core MVC", Description: "C# MVC framework with Razor views and Entity Framework"},
	{Value: "django", Label: "Django", Description: "Batteries-included Python framework with ORM and admin"},
	{Value: "rails", Label: "Ruby on Rails", Description: "Convention-over-configuration Ruby framework"},
	{Value: "laravel", Label: "Laravel", Description: "Elegant PHP framework with Eloquent ORM and Blade templates"},
	{Value: "express", Label: "Express.js", Description: "Minimal Node.js framework for APIs and server-rendered apps"},
	{Value: "spring-boot", Label: "Spring Boot", Description: "Production-grade Java framework with dependency injection"},
	{Value: "nextjs", Label: "Next.js", Description: "React framework with server-side rendering and file routing"},
	{Value: "flask", Label: "Flask", Description: "Lightweight Python micro-framework"},
}

var features = []models.Feature{
	{ID: "authentication", Label: "User Authentication", Category: models.CategorySecurity},
	{ID: "authorization", Label: "Role-Based Authorization", Category: models.CategorySecurity},
	{ID: "database", Label: "Relational Database", Category: models.CategoryData},
	{ID: "migrations", Label: "Schema Migrations", Category: models.CategoryData},
	{ID: "caching", Label: "Response Caching", Category: models.CategoryData},
	{ID: "rest-api", Label: "REST API", Category: models.CategoryAPI},
	{ID: "api-docs", Label: "API Documentation", Category: models.CategoryAPI},
	{ID: "responsive-ui", Label: "Responsive Layout", Category: models.CategoryUI},
	{ID: FeatureClearFrontendDesign, Label: "Clear Frontend Design", Category: models.CategoryUI},
	{ID: "ci-cd", Label: "CI/CD Pipeline", Category: models.CategoryDevOps},
	{ID: "testing", Label: "Automated Tests", Category: models.CategoryDevOps},
	{ID: "docker", Label: "Docker Setup", Category: models.CategoryInfrastructure},
	{ID: "logging", Label: "Structured Logging", Category: models.CategoryInfrastructure},
}

var agents = []models.Agent{
	{ID: AgentTeamLeader, Name: "Atlas", Role: "Team Leader", Gradient: "99 183"},
	{ID: AgentCoder, Name: "Forge", Role: "Backend Engineer", Gradient: "39 117"},
	{ID: AgentFrontend, Name: "Pixel", Role: "Frontend Developer", Gradient: "205 218"},
	{ID: AgentDatabase, Name: "Vault", Role: "Database Architect", Gradient: "42 120"},
}

// Frameworks returns the framework catalog in display order.
func Frameworks() []models.Framework {
	return frameworks
}

// Features returns the feature catalog in display order.
func Features() []models.Feature {
	return features
}

// Agents returns the four fixed agent personas.
func Agents() []models.Agent {
	return agents
}

// FrameworkByValue looks up a framework by its value.
func FrameworkByValue(value string) (models.Framework, bool) {
	for _, f := range frameworks {
		if f.Value == value {
			return f, true
		}
	}
	return models.Framework{}, false
}

// FeatureByID looks up a feature by id.
func FeatureByID(id string) (models.Feature, bool) {
	for _, f := range features {
		if f.ID == id {
			return f, true
		}
	}
	return models.Feature{}, false
}

// AgentByID looks up an agent persona by id.
func AgentByID(id string) (models.Agent, bool) {
	for _, a := range agents {
		if a.ID == id {
			return a, true
		}
	}
	return models.Agent{}, false
}

// FeaturesByCategory groups the feature catalog by category,
// preserving catalog order within each group.
func FeaturesByCategory() map[models.FeatureCategory][]models.Feature {
	grouped := make(map[models.FeatureCategory][]models.Feature)
	for _, f := range features {
		grouped[f.Category] = append(grouped[f.Category], f)
	}
	return grouped
}

// FeatureCategories returns the categories in catalog order.
func FeatureCategories() []models.FeatureCategory {
	var categories []models.FeatureCategory
	seen := make(map[models.FeatureCategory]bool)
	for _, f := range features {
		if !seen[f.Category] {
			seen[f.Category] = true
			categories = append(categories, f.Category)
		}
	}
	return categories
}

// FeatureLabels resolves a list of feature ids to their labels,
// skipping unknown ids.
func FeatureLabels(ids []string) []string {
	var labels []string
	for _, id := range ids {
		if f, ok := FeatureByID(id); ok {
			labels = append(labels, f.Label)
		}
	}
	return labels
}
