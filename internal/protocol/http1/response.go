package http1

import "strconv"

const responseHead = "HTTP/1.1 200 OK\r\nContent-Length: "

// AppendResponse serializes a response echoing the url into buff. Content-Length is the
// length of the url in bytes, the body is the url as is.
func AppendResponse(buff, url []byte) []byte {
	buff = append(buff, responseHead...)
	buff = strconv.AppendUint(buff, uint64(len(url)), 10)
	buff = append(buff, crlf+crlf...)

	return append(buff, url...)
}
