package main

// @title           Academia Backoffice API
// @version         1.0
// @description     API multi-tenant para gestão de academias: sócios, estoque, fiados, recebimentos, despesas e divisão de lucros

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
