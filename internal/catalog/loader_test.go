package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = "game_name,developer,release_date,estimated_downloads,reviews_count,reviews_like_rate,rating,price,difficulty,length,age_restriction,user_defined_tags,supported_os,supported_languages"

func TestParse_CoercesFields(t *testing.T) {
	csv := sampleHeader + "\n" +
		`Portal Storm,Aperture Arts,2019-04-01,1500000,20931,93.5,4.4,19.99,3.2,24.5,13,"Puzzle, Shooter","windows, linux","english, german"` + "\n"

	games, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games[0]
	assert.Equal(t, "Portal Storm", g.Name)
	assert.Equal(t, "Aperture Arts", g.Developer)
	require.NotNil(t, g.ReleaseDate)
	require.NotNil(t, g.ReleaseYear)
	assert.Equal(t, 2019, *g.ReleaseYear)
	require.NotNil(t, g.EstimatedDownloads)
	assert.Equal(t, int64(1500000), *g.EstimatedDownloads)
	require.NotNil(t, g.ReviewCount)
	assert.Equal(t, int64(20931), *g.ReviewCount)
	require.NotNil(t, g.Price)
	assert.InDelta(t, 19.99, *g.Price, 1e-9)
	require.NotNil(t, g.AgeRestriction)
	assert.Equal(t, 13, *g.AgeRestriction)
	assert.False(t, g.IsFree)
	assert.Equal(t, []string{"Puzzle", "Shooter"}, g.TagList())
	assert.Equal(t, "Puzzle", g.PrimaryTag())
	assert.Equal(t, []string{"windows", "linux"}, g.OSList())
	assert.Equal(t, []string{"english", "german"}, g.LanguageList())
}

func TestParse_BadValuesBecomeNull(t *testing.T) {
	csv := sampleHeader + "\n" +
		"Mystery Game,Someone,not-a-date,lots,,n/a,?,free,,,,Arcade,windows,\n"

	games, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games[0]
	assert.Nil(t, g.ReleaseDate)
	assert.Nil(t, g.ReleaseYear)
	assert.Nil(t, g.EstimatedDownloads)
	assert.Nil(t, g.ReviewLikeRate)
	assert.Nil(t, g.Rating)
	assert.Nil(t, g.Price)
	assert.Nil(t, g.AgeRestriction)
	// No price listed counts as free.
	assert.True(t, g.IsFree)
	assert.Equal(t, int64(0), g.Downloads())
}

func TestParse_DedupeKeepsFirst(t *testing.T) {
	csv := sampleHeader + "\n" +
		"Same Game,Same Dev,2020-01-01,100,,,,1.00,,,0,A,windows,\n" +
		"Same Game,Same Dev,2021-01-01,999,,,,2.00,,,0,B,linux,\n" +
		"Same Game,Other Dev,2021-01-01,50,,,,0,,,0,C,windows,\n"

	games, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, int64(100), games[0].Downloads())
	assert.Equal(t, "Other Dev", games[1].Developer)
}

func TestParse_MissingColumns(t *testing.T) {
	csv := "game_name,developer\nFoo,Bar\n"
	_, err := Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing columns")
	assert.Contains(t, err.Error(), "estimated_downloads")
}

func TestParse_OptionalColumnsAbsent(t *testing.T) {
	header := "game_name,developer,release_date,estimated_downloads,reviews_like_rate,rating,price,difficulty,length,age_restriction,user_defined_tags,supported_os"
	csv := header + "\nFoo,Bar,2020-06-01,10,90,4,0,1,2,0,Indie,windows\n"

	games, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Nil(t, games[0].ReviewCount)
	assert.Empty(t, games[0].LanguageList())
}

func TestParse_ThousandsSeparators(t *testing.T) {
	csv := sampleHeader + "\n" +
		`Big Game,Big Dev,2018-03-03,"1,250,000",,88.1,4.1,0,2,10,0,Action,windows,english` + "\n"

	games, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.NotNil(t, games[0].EstimatedDownloads)
	assert.Equal(t, int64(1250000), *games[0].EstimatedDownloads)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("testdata/does-not-exist.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open catalog")
}
