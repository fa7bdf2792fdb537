package api

import (
	"encoding/json"
	"net/http"
)

// RegisterDocsRoutes mounts the API documentation:
//
//	GET /                   redirects to /docs
//	GET /docs               Swagger UI
//	GET /docs/openapi       parsed document as JSON
//	GET /docs/openapi.yaml  the embedded source document
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", redirectToDocs)
	mux.HandleFunc("GET /docs", serveSwaggerUI)
	mux.HandleFunc("GET /docs/openapi", serveOpenAPIJSON)
	mux.HandleFunc("GET /docs/openapi.yaml", serveOpenAPIYAML)
}

func redirectToDocs(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs", http.StatusMovedPermanently)
}

func serveOpenAPIJSON(w http.ResponseWriter, _ *http.Request) {
	doc, err := GetSwagger()
	if err != nil {
		http.Error(w, "openapi document unavailable", http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(doc)
	if err != nil {
		http.Error(w, "openapi document unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body) //nolint:errcheck // Nothing useful to do if write fails
}

func serveOpenAPIYAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openAPIDocument) //nolint:errcheck // Nothing useful to do if write fails
}

func serveSwaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerUIPage)) //nolint:errcheck // Nothing useful to do if write fails
}

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Personal Bank API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body style="margin:0">
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => SwaggerUIBundle({ url: '/docs/openapi', dom_id: '#swagger-ui' });
  </script>
</body>
</html>`
