package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cvgen/internal/anonymize"
	"cvgen/internal/model"
	"cvgen/internal/render"
)

const sampleResume = `{
  "basics": {
    "name": "Jean Dupont",
    "label": "Tech Lead",
    "email": "jean.dupont@example.com",
    "phone": "+33 6 12 34 56 78",
    "summary": "Vingt ans d'expérience. Spécialiste du backend.",
    "location": {"city": "Lyon", "region": "France"}
  },
  "work": [
    {
      "name": "Mixdata",
      "position": "Tech Lead",
      "startDate": "2021-01",
      "summary": "Plateforme de données.",
      "highlights": ["Conception de l'architecture", "Environnement: Go, GCP"]
    },
    {
      "name": "SFEIR (Mission Voyages-SNCF.com)",
      "position": "Développeur",
      "startDate": "2015-03",
      "endDate": "2018-06",
      "summary": "Refonte du tunnel de réservation.",
      "highlights": [
        "Migration du moteur de recherche",
        "Mise en place du cache distribué",
        "Automatisation des déploiements",
        "Revue de code et mentorat",
        "Astreintes de production",
        "Environnement: Java, Kafka"
      ]
    },
    {
      "name": "SFEIR (Mission Groupama)",
      "position": "Développeur (Mission Groupama)",
      "startDate": "2014-01",
      "endDate": "2015-06",
      "summary": "Espace client assurance."
    }
  ],
  "skills": [{"name": "Langages", "keywords": ["Go", "Java"]}],
  "languages": [{"language": "Français", "fluency": "Natif"}]
}`

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	anon, err := anonymize.New(anonymize.DefaultRules())
	require.NoError(t, err)
	asm, err := render.NewAssembler()
	require.NoError(t, err)
	return NewGenerator(nil, nil, anon, asm, render.DefaultTheme(), zap.NewNop())
}

func writeSample(t *testing.T) (dir, input string) {
	t.Helper()
	dir = t.TempDir()
	input = filepath.Join(dir, "cv.json")
	require.NoError(t, os.WriteFile(input, []byte(sampleResume), 0o644))
	return dir, input
}

func TestRunAnonymousFrench(t *testing.T) {
	g := newTestGenerator(t)
	dir, input := writeSample(t)

	err := g.Run(context.Background(), Options{
		Input:     input,
		OutputDir: dir,
		Anonymize: true,
	})
	require.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(dir, "resume-fr-anonymous.html"))
	require.NoError(t, err)
	html := string(out)

	// replacements present, originals gone
	assert.Contains(t, html, "Client Transports")
	assert.Contains(t, html, "Client Assurances")
	assert.NotContains(t, html, "Voyages-SNCF.com")
	assert.NotContains(t, html, "Groupama")

	// contact details cleared, subject name kept
	assert.NotContains(t, html, "jean.dupont@example.com")
	assert.NotContains(t, html, "+33 6 12 34 56 78")
	assert.Contains(t, html, "Jean Dupont")
}

func TestRunPlainFrench(t *testing.T) {
	g := newTestGenerator(t)
	dir, input := writeSample(t)

	err := g.Run(context.Background(), Options{Input: input, OutputDir: dir})
	require.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(dir, "resume-fr.html"))
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, `lang="fr"`)
	assert.Contains(t, html, "jean.dupont@example.com")
	assert.Contains(t, html, "Mission Voyages-SNCF.com")
	// both SFEIR engagements grouped under one company heading
	assert.Contains(t, html, "SFEIR")
	// French section labels
	assert.Contains(t, html, "Parcours professionnel")
}

func TestRunExplicitOutputPath(t *testing.T) {
	g := newTestGenerator(t)
	dir, input := writeSample(t)

	out := filepath.Join(dir, "nested", "cv.html")
	err := g.Run(context.Background(), Options{Input: input, Output: out})
	require.NoError(t, err)

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestRunRejectsInvalidInput(t *testing.T) {
	g := newTestGenerator(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"work": []}`), 0o644))

	err := g.Run(context.Background(), Options{Input: input, OutputDir: dir})
	assert.Error(t, err)
}

func TestRunMissingTranslator(t *testing.T) {
	g := newTestGenerator(t)
	dir, input := writeSample(t)

	err := g.Run(context.Background(), Options{Input: input, OutputDir: dir, Translate: true})
	assert.ErrorContains(t, err, "no translator configured")
}

func TestRenderHTMLDoesNotMutateCallerRecordUnlessAnonymized(t *testing.T) {
	g := newTestGenerator(t)

	rec, err := model.Parse([]byte(sampleResume))
	require.NoError(t, err)

	_, err = g.RenderHTML(rec, "fr", false)
	require.NoError(t, err)
	assert.Equal(t, "jean.dupont@example.com", rec.Basics.Email)

	_, err = g.RenderHTML(rec, "fr", true)
	require.NoError(t, err)
	assert.Empty(t, rec.Basics.Email)
}
