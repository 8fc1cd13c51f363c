// Package main 启动应用程序
package main

import "github.com/yeisme/imagevault/pkg/cmd"

//	@title			ImageVault API
//	@version		1.0
//	@description	ImageVault 是一个图片托管服务：接收 multipart 上传，按毫秒时间戳加百分号编码的文件名落盘，并返回公开访问地址。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

//	@contact.name	yeisme
//	@contact.email	yefun2004@gmail.com.

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
