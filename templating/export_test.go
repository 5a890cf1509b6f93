package templating

// OpenOutputForTest exposes openOutput.
var OpenOutputForTest = (*Engine).openOutput
