package i18n

// Catalog is exported for testing
var Catalog = catalog
