package dashboard

import (
	"html/template"
	"net/http"

	"github.com/srgblkn/movies/internal/domain"
)

type pageData struct {
	Movies []domain.Movie
	Total  int
	Count  int
	Min    int
	Max    int
}

var cardsTmpl = template.Must(template.New("cards").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>Умный поиск фильмов</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 0 auto; padding: 1rem; }
.controls { display: flex; gap: 1rem; align-items: center; margin-bottom: 1rem; }
.card { display: flex; gap: 1rem; border: 1px solid #ccc; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; }
.card img { width: 160px; height: auto; object-fit: cover; }
.poster-missing { width: 160px; color: #888; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Умный поиск фильмов</h1>
<p>Демо релиза 1.0: случайные позиции из датасета (название — описание).</p>
<div class="controls">
<form method="GET" action="/">
<label>Сколько фильмов показать
<input type="number" name="count" min="{{.Min}}" max="{{.Max}}" value="{{.Count}}">
</label>
<button type="submit">Применить</button>
</form>
<form method="POST" action="/refresh">
<input type="hidden" name="count" value="{{.Count}}">
<button type="submit" id="refresh">Показать другие</button>
</form>
<span>Всего фильмов в CSV: <strong id="total">{{.Total}}</strong></span>
</div>
<hr>
{{range .Movies}}
<div class="card">
{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}">{{else}}<span class="poster-missing">Постер отсутствует</span>{{end}}
<div>
<h2>{{.Title}}</h2>
<p>{{.Description}}</p>
{{if .PageURL}}<a href="{{.PageURL}}">Перейти на страницу-источник</a>{{end}}
</div>
</div>
{{end}}
<hr>
<p>Далее (в релизах 2.0+): поиск по пользовательскому описанию и выдача top-K по релевантности.</p>
</body>
</html>
`))

var noticeTmpl = template.Must(template.New("notice").Parse(`<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>Умный поиск фильмов</title></head>
<body>
<h1>Умный поиск фильмов</h1>
<p class="{{.Class}}">{{.Message}}</p>
</body>
</html>
`))

func renderCards(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	cardsTmpl.Execute(w, data)
}

// renderError covers the fatal loader failures: nothing else gets painted
// for this pass.
func renderError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	noticeTmpl.Execute(w, struct{ Class, Message string }{"error", "Ошибка загрузки CSV: " + msg})
}

// renderWarning covers the valid-but-empty dataset: not a failure, but there
// is nothing to sample from.
func renderWarning(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	noticeTmpl.Execute(w, struct{ Class, Message string }{"warning", msg})
}
