package services

import "testing"

const listingPage = `
<div class="film_list-wrap">
<div class="flw-item">
 <div class="film-poster">
  <img data-src="https://img.example.com/inception.jpg" alt="Inception poster">
  <a href="https://movies.example.com/movie/inception" title="Inception"></a>
  <div class="film-detail">
   <span class="tick-rate">8.8</span>
   <span class="fdi-item">2010</span>
  </div>
 </div>
</div>
<div class="flw-item">
 <div class="film-poster">
  <a href="https://movies.example.com/movie/ghost" title="No Poster Here"></a>
  <div class="film-detail">
   <span class="tick-rate">5.0</span>
  </div>
 </div>
</div>
<div class="flw-item">
 <div class="film-poster">
  <img src="https://img.example.com/heat.jpg" alt="Heat">
  <a href="https://movies.example.com/movie/heat"></a>
  <div class="film-detail">
   <span class="fdi-item">1995</span>
  </div>
 </div>
</div>
</div>
`

func TestParseMovieListings(t *testing.T) {
	movies := ParseMovieListings(listingPage)

	// The entry without an image is dropped
	if len(movies) != 2 {
		t.Fatalf("Expected 2 movies, got %d", len(movies))
	}

	first := movies[0]
	if first.Title != "Inception" {
		t.Errorf("Expected title from title attribute, got %q", first.Title)
	}
	if first.Image != "https://img.example.com/inception.jpg" {
		t.Errorf("Expected lazy-loaded image URL, got %q", first.Image)
	}
	if first.Rating != "8.8" {
		t.Errorf("Expected rating 8.8, got %q", first.Rating)
	}
	if first.Link != "https://movies.example.com/movie/inception" {
		t.Errorf("Unexpected link %q", first.Link)
	}
	if first.Year != "2010" {
		t.Errorf("Expected year 2010, got %q", first.Year)
	}

	second := movies[1]
	if second.Title != "Heat" {
		t.Errorf("Expected title to fall back to alt text, got %q", second.Title)
	}
	if second.Image != "https://img.example.com/heat.jpg" {
		t.Errorf("Expected image to fall back to src, got %q", second.Image)
	}
	if second.Rating != "N/A" {
		t.Errorf("Missing rating should report N/A, got %q", second.Rating)
	}
}

func TestParseMovieListingsEmptyPage(t *testing.T) {
	if movies := ParseMovieListings("<html><body>maintenance</body></html>"); len(movies) != 0 {
		t.Errorf("Expected no movies from an empty page, got %d", len(movies))
	}
}
