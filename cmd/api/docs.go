package main

// @title           Loja API
// @version         1.0
// @description     API da loja: catálogo, carrinho, pedidos, despesas e painel financeiro

// @contact.name   Suporte
// @contact.email  suporte@loja.local

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
