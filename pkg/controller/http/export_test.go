package http

// TemplateFS exposes the embedded page templates for testing
var TemplateFS = templateFS

// StatusOf is exported for testing
var StatusOf = statusOf
