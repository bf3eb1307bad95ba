package main

import (
	"log"
	"os"

	"github.com/vegasq/songcat/internal/catalog"
	"github.com/vegasq/songcat/internal/reader"
)

func main() {
	songs := []catalog.Song{
		{Name: "Midnight Drive", Artist: "Neon Coast", Duration: 215000, Album: "Afterglow", Popularity: 72,
			Danceability: 0.71, Energy: 0.42, Loudness: -6.3, Speechiness: 0.04, Acousticness: 0.12,
			Instrumentalness: 0.0, Liveness: 0.09, Valence: 0.55, Tempo: 124.0},
		{Name: "Paper Boats", Artist: "Lowlands", Duration: 187000, Album: "Harbour", Popularity: 8,
			Danceability: 0.38, Energy: 0.91, Loudness: -3.1, Speechiness: 0.07, Acousticness: 0.01,
			Instrumentalness: 0.2, Liveness: 0.33, Valence: 0.21, Tempo: 98.5},
		{Name: "Static Bloom", Artist: "Neon Coast", Duration: 242000, Album: "Afterglow", Popularity: 55,
			Danceability: 0.64, Energy: 0.27, Loudness: -9.8, Speechiness: 0.03, Acousticness: 0.48,
			Instrumentalness: 0.61, Liveness: 0.12, Valence: 0.4, Tempo: 131.2},
		{Name: "Copper Sun", Artist: "Marigold", Duration: 201000, Album: "Field Notes", Popularity: 91,
			Danceability: 0.82, Energy: 0.77, Loudness: -4.6, Speechiness: 0.11, Acousticness: 0.05,
			Instrumentalness: 0.0, Liveness: 0.21, Valence: 0.83, Tempo: 118.0},
		{Name: "Weather Vane", Artist: "Lowlands", Duration: 263000, Album: "Harbour", Popularity: 33,
			Danceability: 0.45, Energy: 0.35, Loudness: -11.2, Speechiness: 0.05, Acousticness: 0.72,
			Instrumentalness: 0.05, Liveness: 0.1, Valence: 0.3, Tempo: 86.4},
	}

	for _, path := range []string{"songs.tsv", "songs.tsv.gz", "songs.parquet"} {
		if err := reader.WriteFile(path, songs); err != nil {
			log.Fatal(err)
		}
	}

	queries := "select songs where tempo > 120 and energy < 0.5\n" +
		"select songs where popularity > 50\n" +
		"select songs where popularity < 10\n"
	if err := os.WriteFile("queries.txt", []byte(queries), 0o644); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated catalogs with %d songs and queries.txt", len(songs))
}
