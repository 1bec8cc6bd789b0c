package cli

// PrintMatrices is exported for testing
var PrintMatrices = printMatrices
