package catalog

// Song is the flat row shape shared by the loaders and the parquet schema.
// It becomes a Record once the loader assigns it an identity.
type Song struct {
	Name             string  `parquet:"name" json:"name"`
	Artist           string  `parquet:"artist" json:"artist"`
	Duration         float64 `parquet:"duration" json:"duration"`
	Album            string  `parquet:"album" json:"album"`
	Popularity       float64 `parquet:"popularity" json:"popularity"`
	Danceability     float64 `parquet:"danceability" json:"danceability"`
	Energy           float64 `parquet:"energy" json:"energy"`
	Loudness         float64 `parquet:"loudness" json:"loudness"`
	Speechiness      float64 `parquet:"speechiness" json:"speechiness"`
	Acousticness     float64 `parquet:"acousticness" json:"acousticness"`
	Instrumentalness float64 `parquet:"instrumentalness" json:"instrumentalness"`
	Liveness         float64 `parquet:"liveness" json:"liveness"`
	Valence          float64 `parquet:"valence" json:"valence"`
	Tempo            float64 `parquet:"tempo" json:"tempo"`
}

// Record converts the row into a catalog record with the given identity
func (s Song) Record(id int) Record {
	return Record{
		id: id,
		details: [numDetailFields]string{
			Name:   s.Name,
			Artist: s.Artist,
			Album:  s.Album,
		},
		values: [numNumericFields]float64{
			Duration:         s.Duration,
			Popularity:       s.Popularity,
			Danceability:     s.Danceability,
			Energy:           s.Energy,
			Loudness:         s.Loudness,
			Speechiness:      s.Speechiness,
			Acousticness:     s.Acousticness,
			Instrumentalness: s.Instrumentalness,
			Liveness:         s.Liveness,
			Valence:          s.Valence,
			Tempo:            s.Tempo,
		},
	}
}

// Song converts the record back into its flat row shape
func (r Record) Song() Song {
	return Song{
		Name:             r.details[Name],
		Artist:           r.details[Artist],
		Album:            r.details[Album],
		Duration:         r.values[Duration],
		Popularity:       r.values[Popularity],
		Danceability:     r.values[Danceability],
		Energy:           r.values[Energy],
		Loudness:         r.values[Loudness],
		Speechiness:      r.values[Speechiness],
		Acousticness:     r.values[Acousticness],
		Instrumentalness: r.values[Instrumentalness],
		Liveness:         r.values[Liveness],
		Valence:          r.values[Valence],
		Tempo:            r.values[Tempo],
	}
}

// FromSongs builds a catalog assigning 1-based identities in slice order
func FromSongs(songs []Song) *Catalog {
	records := make([]Record, len(songs))
	for i, s := range songs {
		records[i] = s.Record(i + 1)
	}
	return &Catalog{records: records}
}
