package handler

import "github.com/gin-gonic/gin"

// abortWithError logs the failure and ends the request with a JSON
// error body. consoleStr is optional and overrides what gets logged.
func abortWithError(c *gin.Context, code int, responseStr string, consoleStr ...string) {
	if len(consoleStr) > 0 {
		log.Errorln(consoleStr[0])
	} else {
		log.Errorln(responseStr)
	}
	c.AbortWithStatusJSON(code, ErrorResponse{Error: responseStr})
}
