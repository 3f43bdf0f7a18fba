package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"streamhub/config"
)

// Movie is one scraped listing entry
type Movie struct {
	Title  string `json:"title"`
	Image  string `json:"image"`
	Rating string `json:"rating"`
	Link   string `json:"link"`
	Year   string `json:"year"`
}

var movieBaseURL string

var movieHTTPClient = &http.Client{Timeout: 15 * time.Second}

// Category paths on the listing site, relative to the configured base URL
var movieCategoryPaths = map[string]string{
	"home":      "/",
	"trending":  "/trending-movies/",
	"new":       "/genre/best-of-the-year/",
	"popular":   "/top-100-popular-movies/",
	"boxoffice": "/top-box-office/",
	"top250":    "/top-250-imdb-movies/",
	"tvshows":   "/series/",
	"action":    "/genre/action/",
	"comedy":    "/genre/comedy-movies/",
	"horror":    "/genre/horror/",
	"scifi":     "/genre/science-fiction-movies/",
	"romance":   "/genre/romance-movies/",
	"animation": "/genre/animation-movies/",
	"thriller":  "/genre/thriller/",
}

// The listing site ships no API, so entries are pulled out of its markup with
// pattern matching. This breaks whenever the site changes its templates; callers
// must treat an empty result as a feed outage, not an application error.
var (
	movieItemPattern   = regexp.MustCompile(`(?is)<div[^>]*class="[^"]*flw-item[^"]*"[^>]*>(.*?)</div>\s*</div>\s*</div>`)
	movieTitlePattern  = regexp.MustCompile(`(?i)title="([^"]+)"`)
	movieAltPattern    = regexp.MustCompile(`(?i)alt="([^"]+)"`)
	movieImgPattern    = regexp.MustCompile(`(?i)data-src="([^"]+)"`)
	movieSrcPattern    = regexp.MustCompile(`(?i)src="([^"]+)"`)
	movieRatingPattern = regexp.MustCompile(`(?i)class="[^"]*tick-rate[^"]*">([^<]+)<`)
	movieLinkPattern   = regexp.MustCompile(`(?i)href="([^"]+)"`)
	movieYearPattern   = regexp.MustCompile(`(?i)class="[^"]*fdi-item[^"]*">(\d{4})<`)
)

// InitMovieService stores the listing base URL from config
func InitMovieService(cfg *config.Config) {
	movieBaseURL = strings.TrimSuffix(cfg.Movies.ListingURL, "/")
}

// FetchMovieListings scrapes one category page from the external listing site
func FetchMovieListings(ctx context.Context, category string) ([]Movie, error) {
	path, ok := movieCategoryPaths[category]
	if !ok {
		path = movieCategoryPaths["home"]
	}
	if movieBaseURL == "" {
		return nil, fmt.Errorf("movie listing source not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, movieBaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := movieHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing page: %w", err)
	}

	return ParseMovieListings(string(body)), nil
}

// ParseMovieListings extracts movie entries from listing-page markup. Entries
// missing a title or image are skipped.
func ParseMovieListings(html string) []Movie {
	var movies []Movie

	for _, match := range movieItemPattern.FindAllStringSubmatch(html, -1) {
		item := match[1]

		title := firstSubmatch(movieTitlePattern, item)
		if title == "" {
			title = firstSubmatch(movieAltPattern, item)
		}

		image := firstSubmatch(movieImgPattern, item)
		if image == "" {
			image = firstSubmatch(movieSrcPattern, item)
		}

		if title == "" || image == "" {
			continue
		}

		rating := strings.TrimSpace(firstSubmatch(movieRatingPattern, item))
		if rating == "" {
			rating = "N/A"
		}

		link := firstSubmatch(movieLinkPattern, item)
		if link != "" && !strings.HasPrefix(link, "http") {
			link = movieBaseURL + link
		}

		movies = append(movies, Movie{
			Title:  title,
			Image:  image,
			Rating: rating,
			Link:   link,
			Year:   firstSubmatch(movieYearPattern, item),
		})
	}

	return movies
}

func firstSubmatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
