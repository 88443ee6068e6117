package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/appforge/pkg/models"
)

func TestFrameworkByValue(t *testing.T) {
	f, ok := FrameworkByValue("aspnet-core-mvc")
	require.True(t, ok)
	assert.Equal(t, "ASP.NET Core MVC", f.Label)

	_, ok = FrameworkByValue("cobol-cgi")
	assert.False(t, ok)
}

func TestFeatureCategoriesAreClosed(t *testing.T) {
	valid := map[models.FeatureCategory]bool{
		models.CategorySecurity:       true,
		models.CategoryData:           true,
		models.CategoryAPI:            true,
		models.CategoryUI:             true,
		models.CategoryDevOps:         true,
		models.CategoryInfrastructure: true,
	}
	for _, f := range Features() {
		assert.True(t, valid[f.Category], "feature %s has unknown category %s", f.ID, f.Category)
	}
}

func TestClearFrontendDesignFeatureExists(t *testing.T) {
	f, ok := FeatureByID(FeatureClearFrontendDesign)
	require.True(t, ok)
	assert.Equal(t, models.CategoryUI, f.Category)
}

func TestFourAgentPersonas(t *testing.T) {
	require.Len(t, Agents(), 4)

	for _, id := range []string{AgentTeamLeader, AgentCoder, AgentFrontend, AgentDatabase} {
		a, ok := AgentByID(id)
		require.True(t, ok, "missing agent %s", id)
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Role)
		assert.NotEmpty(t, a.Gradient)
	}
}

func TestFeaturesByCategoryCoversCatalogInOrder(t *testing.T) {
	grouped := FeaturesByCategory()

	// walking categories then group members must reproduce the flat
	// catalog exactly; the configuring view's cursor relies on this
	var flattened []models.Feature
	for _, category := range FeatureCategories() {
		require.NotEmpty(t, grouped[category])
		flattened = append(flattened, grouped[category]...)
	}
	assert.Equal(t, Features(), flattened)
}

func TestFeatureLabelsSkipsUnknownIDs(t *testing.T) {
	labels := FeatureLabels([]string{"authentication", "no-such-feature", "docker"})
	assert.Equal(t, []string{"User Authentication", "Docker Setup"}, labels)
}
